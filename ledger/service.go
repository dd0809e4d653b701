package ledger

import (
	"errors"
	"log"
	"sort"
	"time"

	"earnmedia/models"
	"earnmedia/utils"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service is the ledger core: every balance- or status-mutating operation
// runs through it as a single retried transaction.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

const maxTxRetries = 3

// inTx runs fn in a transaction, retrying a bounded number of times when the
// failure is transient (deadlock or lock-wait timeout). Non-transient errors
// surface unchanged with no partial state committed.
func (s *Service) inTx(fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = s.db.Transaction(fn)
		if err == nil || attempt >= maxTxRetries || !isTransient(err) {
			return err
		}
		log.Printf("[ledger] transient tx failure, retrying (attempt %d): %v", attempt, err)
		time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
	}
}

// MySQL 1213 = deadlock victim, 1205 = lock wait timeout.
func isTransient(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1213 || myErr.Number == 1205
	}
	return false
}

// MySQL 1062 = duplicate key.
func isDuplicateKey(err error) bool {
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

// lockAccounts loads the given account rows FOR UPDATE in ascending id order.
// Every multi-account mutation acquires its locks through here, so two
// concurrent referral chains can never deadlock on each other.
func lockAccounts(tx *gorm.DB, ids ...uint) (map[uint]*models.User, error) {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var users []models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", sorted).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]*models.User, len(users))
	for i := range users {
		out[users[i].ID] = &users[i]
	}
	for _, id := range sorted {
		if _, ok := out[id]; !ok {
			return nil, ErrNotFound
		}
	}
	return out, nil
}

// lockedPair holds the locked rows touched by an earning event: the account
// that earned and, when one exists, its referrer.
type lockedPair struct {
	earner   *models.User
	referrer *models.User
}

// lockEarnerAndReferrer resolves the earner's referrer first (referred_by and
// referral_code are immutable, so the unlocked probe is safe), then locks both
// rows in ascending id order.
func lockEarnerAndReferrer(tx *gorm.DB, earnerID uint) (*lockedPair, error) {
	var probe models.User
	if err := tx.Select("id", "referred_by").Take(&probe, earnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ref, err := referrerOf(tx, &probe)
	if err != nil {
		return nil, err
	}

	ids := []uint{earnerID}
	if ref != nil && ref.ID != earnerID {
		ids = append(ids, ref.ID)
	}
	locked, err := lockAccounts(tx, ids...)
	if err != nil {
		return nil, err
	}
	p := &lockedPair{earner: locked[earnerID]}
	if ref != nil && ref.ID != earnerID {
		p.referrer = locked[ref.ID]
	}
	return p, nil
}

// creditLocked applies delta to an already-locked account row and writes the
// audit Transaction row. The balance never commits below zero.
func creditLocked(tx *gorm.DB, u *models.User, delta float64, txType, message string) error {
	newBal := utils.RoundFloat(u.Balance+delta, 2)
	if newBal < 0 {
		return ErrInsufficientFunds
	}
	if err := tx.Model(&models.User{}).Where("id = ?", u.ID).Update("balance", newBal).Error; err != nil {
		return err
	}
	u.Balance = newBal

	flow := "credit"
	amount := delta
	if delta < 0 {
		flow = "debit"
		amount = -delta
	}
	msg := message
	return tx.Create(&models.Transaction{
		UserID:          u.ID,
		Amount:          utils.RoundFloat(amount, 2),
		OrderID:         utils.GenerateOrderID(u.ID),
		TransactionFlow: flow,
		TransactionType: txType,
		Message:         &msg,
	}).Error
}
