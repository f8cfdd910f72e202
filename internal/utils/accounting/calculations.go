package accounting

import (
	"errors"
	"fmt"

	"github.com/finbooks/ledger-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyEpsilon is the tolerance for the debit/credit balance check:
// half of the smallest minor unit (0.005), so stored fixed-precision
// amounts that truly balance never trip it, while any real imbalance does.
var CurrencyEpsilon = decimal.NewFromFloat(0.005)

var (
	// ErrMalformedLine means a line has both or neither of debit/credit set,
	// or a negative amount.
	ErrMalformedLine = errors.New("line must have exactly one of debit or credit positive")
	// ErrEmptyEntry means the entry has fewer than two lines.
	ErrEmptyEntry = errors.New("entry must have at least two lines")
	// ErrSingleAccount means all lines touch the same account.
	ErrSingleAccount = errors.New("entry must touch at least two distinct accounts")
	// ErrUnbalanced means the debit and credit totals differ beyond the currency epsilon.
	ErrUnbalanced = errors.New("entry debits and credits do not balance")
)

// ValidateLine checks the exactly-one-of-debit/credit invariant for a single line.
func ValidateLine(line domain.JournalLine) error {
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return fmt.Errorf("%w: negative amount on account %s", ErrMalformedLine, line.AccountCode)
	}
	debitSet := line.Debit.IsPositive()
	creditSet := line.Credit.IsPositive()
	if debitSet == creditSet {
		return fmt.Errorf("%w: account %s has debit %s and credit %s",
			ErrMalformedLine, line.AccountCode, line.Debit.String(), line.Credit.String())
	}
	return nil
}

// ValidateEntryLines runs the full pre-persistence validation over an
// entry's lines: shape of each line, minimum line and account counts, and
// the balance check. It is a pure function; persistence concerns stay in
// the repositories.
func ValidateEntryLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return ErrEmptyEntry
	}

	accounts := make(map[string]struct{}, len(lines))
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if err := ValidateLine(line); err != nil {
			return err
		}
		accounts[line.AccountCode] = struct{}{}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}

	if len(accounts) < 2 {
		return ErrSingleAccount
	}

	if debits.Sub(credits).Abs().GreaterThan(CurrencyEpsilon) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// SignedBalance computes an account's statement balance from its debit and
// credit totals using the account type's normal balance: debit-normal
// accounts report debit-credit, credit-normal accounts credit-debit.
func SignedBalance(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType.NormalBalance() == domain.DebitNormal {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}
