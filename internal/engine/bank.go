package engine

// Bank holds the gold of every player, one account per player id.
type Bank struct {
	accounts map[PlayerID]*Account
}

func NewBank() *Bank {
	return &Bank{accounts: make(map[PlayerID]*Account)}
}

// Account returns the player's account, creating it if absent.
func (b *Bank) Account(id PlayerID) *Account {
	acc, ok := b.accounts[id]
	if !ok {
		acc = &Account{}
		b.accounts[id] = acc
	}
	return acc
}

// Balances returns a copy of all non-zero balances.
func (b *Bank) Balances() map[PlayerID]int {
	out := make(map[PlayerID]int, len(b.accounts))
	for id, acc := range b.accounts {
		if acc.balance != 0 {
			out[id] = acc.balance
		}
	}
	return out
}

// Account is a single non-negative gold balance.
type Account struct {
	balance int
}

// Balance is never negative.
func (a *Account) Balance() int {
	return a.balance
}

// Withdraw removes gold from the account. The amount must be positive;
// overdraws fail with ErrInsufficientFunds and leave the balance unchanged.
func (a *Account) Withdraw(amount int) (int, error) {
	if amount <= 0 {
		panic("bank: withdraw amount must be positive")
	}
	if amount > a.balance {
		return 0, ErrInsufficientFunds
	}
	a.balance -= amount
	return amount, nil
}

// Deposit puts gold into the account. The amount must be positive.
func (a *Account) Deposit(amount int) int {
	if amount <= 0 {
		panic("bank: deposit amount must be positive")
	}
	a.balance += amount
	return amount
}
