package ledger

import "testing"

func TestTaskRewardKnownTasks(t *testing.T) {
	cases := map[string]float64{
		"watch_video":    0.10,
		"share_referral": 0.15,
		"rate_app":       0.05,
		"comment_post":   0.08,
		"like_page":      0.05,
		"telegram_join":  0.10,
	}
	for id, want := range cases {
		got, ok := TaskReward(id)
		if !ok {
			t.Fatalf("task %s missing from catalog", id)
		}
		if got != want {
			t.Fatalf("task %s reward = %v, want %v", id, got, want)
		}
	}
}

func TestTaskRewardUnknown(t *testing.T) {
	if _, ok := TaskReward("install_app"); ok {
		t.Fatal("expected unknown task to be rejected")
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	a := Tasks()
	if len(a) != 6 {
		t.Fatalf("expected 6 catalog tasks, got %d", len(a))
	}
	a[0].Reward = 999
	b := Tasks()
	if b[0].Reward == 999 {
		t.Fatal("Tasks() must not expose the internal catalog slice")
	}
}
