package ledger

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewService(gdb), mock
}

func TestCompleteTaskUnknownTask(t *testing.T) {
	svc, mock := newMockService(t)

	_, err := svc.CompleteTask(7, "install_app")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteTaskDuplicateIsNoOp(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `task_completions`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT `balance` FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(12.50))
	mock.ExpectCommit()

	res, err := svc.CompleteTask(7, "watch_video")
	require.NoError(t, err)
	require.False(t, res.Credited)
	require.Equal(t, 12.50, res.NewBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteTaskCreditsReward(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `task_completions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT `id`,`referred_by` FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referred_by"}).AddRow(7, nil))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "vip_level"}).AddRow(7, 5.00, 1))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	res, err := svc.CompleteTask(7, "watch_video")
	require.NoError(t, err)
	require.True(t, res.Credited)
	require.Equal(t, 5.10, res.NewBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteTaskPaysReferralCommission(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `task_completions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT `id`,`referred_by` FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referred_by"}).AddRow(7, "ALPHA123"))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE referral_code = ").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referral_code", "balance", "commission_earned", "vip_level"}).
			AddRow(3, "ALPHA123", 50.00, 1.00, 5))
	// Both rows lock in ascending id order.
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "commission_earned", "vip_level"}).
			AddRow(3, 50.00, 1.00, 5).
			AddRow(7, 5.00, 0, 1))
	// Earner credit.
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// Referrer commission: 35% of 0.15.
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `users` SET `commission_earned`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := svc.CompleteTask(7, "share_referral")
	require.NoError(t, err)
	require.True(t, res.Credited)
	require.Equal(t, 5.15, res.NewBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustBalanceInsufficientFunds(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(7, 10.00))
	mock.ExpectRollback()

	_, err := svc.AdjustBalance(7, -50.00, "admin_set", "manual correction")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustBalanceMissingAccount(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}))
	mock.ExpectRollback()

	_, err := svc.AdjustBalance(99, 5.00, "admin_bonus", "bonus")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRejectsSecondPending(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(7, 5.00))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	res, err := svc.Submit(7, "https://youtube.com/watch?v=abc")
	require.NoError(t, err)
	require.False(t, res.Accepted)
	require.Empty(t, res.SubmissionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveNonPendingSubmission(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `submissions` WHERE id = .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_url", "status"}).
			AddRow("abc-123", 7, "https://youtube.com/watch?v=abc", "approved"))
	mock.ExpectRollback()

	err := svc.Approve("abc-123")
	require.ErrorIs(t, err, ErrInvalidState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveCreditsBounty(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `submissions` WHERE id = .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_url", "status"}).
			AddRow("abc-123", 7, "https://youtube.com/watch?v=abc", "pending"))
	mock.ExpectQuery("SELECT `id`,`referred_by` FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referred_by"}).AddRow(7, nil))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "vip_level"}).AddRow(7, 5.00, 1))
	// Guarded status flip: WHERE id AND status=pending.
	mock.ExpectExec("UPDATE `submissions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Approve("abc-123"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveLosesGuardedUpdateRace(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `submissions` WHERE id = .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_url", "status"}).
			AddRow("abc-123", 7, "https://youtube.com/watch?v=abc", "pending"))
	mock.ExpectQuery("SELECT `id`,`referred_by` FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referred_by"}).AddRow(7, nil))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "vip_level"}).AddRow(7, 5.00, 1))
	// Another moderator got there first: zero rows match the guard, so the
	// bounty is never credited.
	mock.ExpectExec("UPDATE `submissions` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Approve("abc-123")
	require.ErrorIs(t, err, ErrInvalidState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountCreditsSignupBonus(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// Unknown inviter code degrades to no linkage.
	mock.ExpectQuery("SELECT `id`,`referral_code` FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referral_code"}))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user, err := svc.CreateAccount("jane@example.com", "hash", nil, "NOSUCHCODE")
	require.NoError(t, err)
	require.Equal(t, uint(42), user.ID)
	require.Equal(t, 5.00, user.Balance)
	require.Len(t, user.ReferralCode, referralCodeLength)
	require.Nil(t, user.ReferredBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountLinksReferrer(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT `id`,`referral_code` FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referral_code"}).AddRow(3, "ALPHA123"))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(43, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user, err := svc.CreateAccount("joe@example.com", "hash", nil, "ALPHA123")
	require.NoError(t, err)
	require.NotNil(t, user.ReferredBy)
	require.Equal(t, "ALPHA123", *user.ReferredBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := svc.CreateAccount("jane@example.com", "hash", nil, "")
	require.ErrorIs(t, err, ErrInvalidState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuyVipDebitsAndUpgrades(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "vip_level"}).AddRow(7, 150.00, 1))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `users` SET `vip_level`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	newBalance, err := svc.BuyVip(7, 2)
	require.NoError(t, err)
	require.Equal(t, 51.00, newBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuyVipNoDowngrade(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "vip_level"}).AddRow(7, 150.00, 3))
	mock.ExpectRollback()

	_, err := svc.BuyVip(7, 2)
	require.ErrorIs(t, err, ErrInvalidState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestWithdrawalHoldsFunds(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .+ FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(7, 60.00))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `withdrawals`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	wd, err := svc.RequestWithdrawal(7, 50.00, "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8")
	require.NoError(t, err)
	require.Equal(t, 50.00, wd.Amount)
	require.Equal(t, "Pending", wd.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestWithdrawalRejectsBadInput(t *testing.T) {
	svc, mock := newMockService(t)

	_, err := svc.RequestWithdrawal(7, 5.00, "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.RequestWithdrawal(7, 50.00, "not-an-address")
	require.ErrorIs(t, err, ErrInvalidArgument)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRolesOf(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT \\* FROM `user_roles` WHERE user_id = ").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "role"}).AddRow(1, 7, "moderator"))

	roles, err := svc.RolesOf(7)
	require.NoError(t, err)
	require.Equal(t, []string{"moderator"}, roles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddBonusRejectsNonPositive(t *testing.T) {
	svc, mock := newMockService(t)

	for _, amount := range []float64{0, -5} {
		_, err := svc.AddBonus(7, amount)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsTransient(t *testing.T) {
	require.False(t, isTransient(errors.New("plain")))
	require.False(t, isTransient(nil))
}
