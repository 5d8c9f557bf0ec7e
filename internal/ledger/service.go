package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cierre-dev/cierre/internal/model"
)

// File names inside a period directory.
const (
	AccountsFile    = "accounts.csv"
	TrialFile       = "trial-balance.csv"
	AdjustmentsFile = "adjustments.csv"
)

// Service provides in-memory lookup over one period's ledger inputs.
type Service struct {
	accounts    []model.Account
	byCode      map[string]model.Account
	trial       []model.TrialBalanceEntry
	adjustments []model.AdjustmentEntry
}

// NewService builds a Service from already-loaded inputs.
func NewService(accounts []model.Account, trial []model.TrialBalanceEntry, adjustments []model.AdjustmentEntry) *Service {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Service{
		accounts:    accounts,
		byCode:      byCode,
		trial:       trial,
		adjustments: adjustments,
	}
}

// Load reads a period directory. accounts.csv is required;
// trial-balance.csv and adjustments.csv are optional and read as empty
// when absent, matching the zero-filled aggregation rule.
func Load(dir string) (*Service, error) {
	accounts, err := loadAccounts(filepath.Join(dir, AccountsFile))
	if err != nil {
		return nil, err
	}

	trial, err := loadTotals(filepath.Join(dir, TrialFile))
	if err != nil {
		return nil, err
	}

	rawAdj, err := loadTotals(filepath.Join(dir, AdjustmentsFile))
	if err != nil {
		return nil, err
	}
	adjustments := make([]model.AdjustmentEntry, len(rawAdj))
	for i, e := range rawAdj {
		adjustments[i] = model.AdjustmentEntry(e)
	}

	return NewService(accounts, trial, adjustments), nil
}

// Accounts returns all accounts.
func (s *Service) Accounts() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// TrialBalance returns the pre-adjustment totals.
func (s *Service) TrialBalance() []model.TrialBalanceEntry {
	return s.trial
}

// Adjustments returns the adjustment-only totals.
func (s *Service) Adjustments() []model.AdjustmentEntry {
	return s.adjustments
}

func loadAccounts(path string) ([]model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	accounts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return accounts, nil
}

func loadTotals(path string) ([]model.TrialBalanceEntry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	entries, err := ReadTotals(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}
