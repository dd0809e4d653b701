package ledger

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"

	"earnmedia/models"
	"earnmedia/utils"

	"gorm.io/gorm"
)

const referralCodeLength = 8

// CreateAccount registers a new account: unique referral code, signup bonus
// credited atomically with creation, optional referral linkage. An inviter
// code that does not resolve is logged and skipped; registration never fails
// because of it.
func (s *Service) CreateAccount(email, passwordHash string, username *string, inviterCode string) (*models.User, error) {
	var created models.User
	err := s.inTx(func(tx *gorm.DB) error {
		code, err := generateReferralCode(tx)
		if err != nil {
			return err
		}

		var referredBy *string
		if inviterCode != "" {
			var inviter models.User
			err := tx.Select("id", "referral_code").Where("referral_code = ?", inviterCode).Take(&inviter).Error
			switch {
			case err == nil:
				referredBy = &inviter.ReferralCode
			case errors.Is(err, gorm.ErrRecordNotFound):
				log.Printf("[ledger] unknown referral code %q, registering without referrer", inviterCode)
			default:
				return err
			}
		}

		created = models.User{
			Username:     username,
			Email:        email,
			Password:     passwordHash,
			ReferralCode: code,
			ReferredBy:   referredBy,
			Balance:      SignupBonus,
			VipLevel:     1,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		return auditCredit(tx, created.ID, SignupBonus, models.TxTypeSignup, "Signup bonus")
	})
	if err != nil {
		// Two registrations can race past the handler's pre-check; the email
		// unique index is the arbiter and the loser gets a conflict.
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrInvalidState)
		}
		return nil, err
	}
	return &created, nil
}

// GetProfile loads an account by id.
func (s *Service) GetProfile(userID uint) (*models.User, error) {
	var u models.User
	if err := s.db.Take(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetBalance returns the current balance of an account.
func (s *Service) GetBalance(userID uint) (float64, error) {
	u, err := s.GetProfile(userID)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

// AdjustBalance applies delta to an account under a row lock and records the
// reason. A negative delta that would push the balance below zero fails with
// ErrInsufficientFunds and commits nothing.
func (s *Service) AdjustBalance(userID uint, delta float64, txType, reason string) (float64, error) {
	var newBalance float64
	err := s.inTx(func(tx *gorm.DB) error {
		locked, err := lockAccounts(tx, userID)
		if err != nil {
			return err
		}
		u := locked[userID]
		if err := creditLocked(tx, u, delta, txType, reason); err != nil {
			return err
		}
		newBalance = u.Balance
		return nil
	})
	return newBalance, err
}

// SetVipTier overwrites the account's VIP level. Tier must be 1..5.
func (s *Service) SetVipTier(userID uint, tier int) error {
	if tier < 1 || tier > 5 {
		return fmt.Errorf("%w: vip tier %d out of range", ErrInvalidArgument, tier)
	}
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("vip_level", tier)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByEmail loads an account by login identity.
func (s *Service) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CountReferrals returns how many accounts signed up with u's code.
func (s *Service) CountReferrals(referralCode string) (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Where("referred_by = ?", referralCode).Count(&n).Error
	return n, err
}

// auditCredit writes a standalone audit row for a credit that was applied as
// part of row creation (signup bonus), where no separate UPDATE happens.
func auditCredit(tx *gorm.DB, userID uint, amount float64, txType, message string) error {
	msg := message
	return tx.Create(&models.Transaction{
		UserID:          userID,
		Amount:          amount,
		OrderID:         utils.GenerateOrderID(userID),
		TransactionFlow: "credit",
		TransactionType: txType,
		Message:         &msg,
	}).Error
}

// generateReferralCode draws random codes until one is free. Collisions on an
// 8-char code over 36 symbols are rare; the loop is bounded anyway.
func generateReferralCode(tx *gorm.DB) (string, error) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const maxAttempts = 100

	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := randomString(alphabet, referralCodeLength)
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&models.User{}).Where("referral_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique referral code after %d attempts", maxAttempts)
}

func randomString(alphabet string, length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(out), nil
}
