package ledger

// SignupBonus is credited once, atomically with account creation.
const SignupBonus = 5.00

// SubmissionBounty is paid to the owner when a submission is approved.
const SubmissionBounty = 100.00

// Task is a catalog entry. The catalog is server-owned: clients name a task,
// the reward always comes from here, never from the request.
type Task struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Reward float64 `json:"reward"`
}

var taskCatalog = []Task{
	{ID: "watch_video", Title: "Watch video ad", Reward: 0.10},
	{ID: "share_referral", Title: "Share referral link", Reward: 0.15},
	{ID: "rate_app", Title: "Rate the app", Reward: 0.05},
	{ID: "comment_post", Title: "Comment on post", Reward: 0.08},
	{ID: "like_page", Title: "Like social media page", Reward: 0.05},
	{ID: "telegram_join", Title: "Join Telegram channel", Reward: 0.10},
}

// Tasks returns the catalog in display order.
func Tasks() []Task {
	out := make([]Task, len(taskCatalog))
	copy(out, taskCatalog)
	return out
}

// TaskReward looks up the server-side reward for a task id.
func TaskReward(taskID string) (float64, bool) {
	for _, t := range taskCatalog {
		if t.ID == taskID {
			return t.Reward, true
		}
	}
	return 0, false
}
