package portfolio

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afripay/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got.String()), msgAndArgs...)
	}
}

func wallet(t domain.WalletType, balance string) domain.Wallet {
	return domain.Wallet{WalletType: t, Balance: balance, Currency: "USD"}
}

func cryptoHolding(balance, invested, rate string) domain.AssetHolding {
	return domain.AssetHolding{
		Balance:       balance,
		TotalInvested: invested,
		Asset:         domain.Asset{Symbol: "BTC", Type: domain.AssetTypeCryptocurrency, ExchangeRate: rate},
	}
}

func TestAggregateCashBalanceScenario(t *testing.T) {
	set := domain.AccountSet{
		Wallets: []domain.Wallet{
			wallet(domain.WalletTypePrimary, "100.50"),
			wallet(domain.WalletTypeSavings, "200.00"),
		},
	}

	s := Aggregate(set, DefaultOptions())
	assertDecimal(t, "300.50", s.TotalFiatBalance)
	assertDecimal(t, "0", s.TotalCryptoValue)
	assertDecimal(t, "0", s.TotalInvestmentValue)
	assertDecimal(t, "0", s.TotalCreditAvailable)
	assertDecimal(t, "300.50", s.TotalNetWorth)
}

func TestAggregateEmptySetIsZero(t *testing.T) {
	s := Aggregate(domain.AccountSet{}, DefaultOptions())
	for _, c := range AllCategories {
		assertDecimal(t, "0", s.Total(c), c)
	}
	assertDecimal(t, "0", s.TotalNetWorth)
	assertDecimal(t, "0", NetWorth(s))
}

func TestAggregateFiatFiltersByType(t *testing.T) {
	wallets := []domain.Wallet{
		wallet(domain.WalletTypePrimary, "10"),
		wallet(domain.WalletTypeCrypto, "999"),
		wallet(domain.WalletTypeSavings, "5.25"),
		wallet(domain.WalletTypeBusiness, "not-a-number"),
		wallet(domain.WalletTypeBusiness, "40"),
	}
	assertDecimal(t, "15.25", AggregateFiat(wallets, NewWalletTypeSet(domain.WalletTypePrimary, domain.WalletTypeSavings)))
	assertDecimal(t, "40", AggregateFiat(wallets, NewWalletTypeSet(domain.WalletTypeBusiness)))
	assertDecimal(t, "0", AggregateFiat(wallets, NewWalletTypeSet()))
}

func TestAggregateFiatIsOrderIndependent(t *testing.T) {
	types := NewWalletTypeSet(domain.WalletTypePrimary, domain.WalletTypeSavings)
	wallets := []domain.Wallet{
		wallet(domain.WalletTypePrimary, "0.10"),
		wallet(domain.WalletTypeSavings, "0.20"),
		wallet(domain.WalletTypePrimary, "1234567.89"),
		wallet(domain.WalletTypeCrypto, "5"),
		wallet(domain.WalletTypeSavings, "bogus"),
		wallet(domain.WalletTypePrimary, "0.00000001"),
	}

	want := decimal.Zero
	for _, w := range wallets {
		if types.Has(w.WalletType) {
			want = want.Add(ParseAmount(w.Balance))
		}
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.Wallet(nil), wallets...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.True(t, want.Equal(AggregateFiat(shuffled, types)))
	}
}

func TestAggregateCrypto(t *testing.T) {
	holdings := []domain.AssetHolding{
		cryptoHolding("0.5", "0", "20000"),
		cryptoHolding("2", "100", "-3"),
		{Balance: "10", Asset: domain.Asset{Symbol: "AAPL", Type: domain.AssetTypeStock, ExchangeRate: "150"}},
	}
	assertDecimal(t, "10000", AggregateCrypto(holdings))
}

func TestHoldingWithZeroInvestedHasNoGainData(t *testing.T) {
	v := ValueHolding(cryptoHolding("0.5", "0", "20000"))
	assertDecimal(t, "10000", v.Value)
	assertDecimal(t, "0.5", v.Quantity)
	assert.Equal(t, NoGainData, v.GainPercent)
	assert.False(t, v.GainPercent.IsDefined())
}

func TestValueHoldingGain(t *testing.T) {
	v := ValueHolding(cryptoHolding("2", "30000", "20000"))
	assertDecimal(t, "40000", v.Value)
	assertDecimal(t, "10000", v.Gain)
	r, ok := v.GainPercent.Value()
	require.True(t, ok)
	assert.Equal(t, "0.3333333333333333", r.String())
}

func TestAggregateInvestmentsAndCredit(t *testing.T) {
	investments := []domain.Investment{
		{PrincipalAmount: "1000", CurrentValue: "1100"},
		{PrincipalAmount: "500", CurrentValue: ""},
		{PrincipalAmount: "500", CurrentValue: "450.75"},
	}
	assertDecimal(t, "1550.75", AggregateInvestments(investments))

	facilities := []domain.CreditFacility{
		{CreditLimit: "5000", AvailableCredit: "3000", UsedCredit: "2000"},
		{CreditLimit: "1000", AvailableCredit: "900", UsedCredit: "500"},
	}
	assertDecimal(t, "3900", AggregateCredit(facilities))
}

func TestValueInvestment(t *testing.T) {
	v := ValueInvestment(domain.Investment{PrincipalAmount: "1000", CurrentValue: "950"})
	assertDecimal(t, "-50", v.Gain)
	assertDecimal(t, "-5", v.GainPercent.Percent())

	v = ValueInvestment(domain.Investment{PrincipalAmount: "0", CurrentValue: "950"})
	assert.Equal(t, NoGainData, v.GainPercent)
	assertDecimal(t, "950", v.Gain)
}

func TestValueCreditToleratesOverLimit(t *testing.T) {
	p := ValueCredit(domain.CreditFacility{CreditLimit: "1000", AvailableCredit: "900", UsedCredit: "500"})
	assert.True(t, p.OverLimit)
	assertDecimal(t, "50", p.Utilisation.Percent())

	p = ValueCredit(domain.CreditFacility{CreditLimit: "1000", AvailableCredit: "500", UsedCredit: "500"})
	assert.False(t, p.OverLimit)

	p = ValueCredit(domain.CreditFacility{CreditLimit: "0", AvailableCredit: "0", UsedCredit: "0"})
	assert.False(t, p.Utilisation.IsDefined())
}

func TestGainPercentZeroPrincipal(t *testing.T) {
	for _, current := range []string{"0", "1", "-1", "123456789.123"} {
		assert.Equal(t, NoGainData, GainPercent(dec(current), decimal.Zero), current)
	}
	assertDecimal(t, "0", NoGainData.Percent())

	r := GainPercent(dec("110"), dec("100"))
	assertDecimal(t, "10", r.Percent())
}

func TestNetWorthIsMonotonic(t *testing.T) {
	base := domain.AccountSet{
		Wallets:          []domain.Wallet{wallet(domain.WalletTypePrimary, "100")},
		Holdings:         []domain.AssetHolding{cryptoHolding("1", "10", "50")},
		Investments:      []domain.Investment{{CurrentValue: "25"}},
		CreditFacilities: []domain.CreditFacility{{AvailableCredit: "75"}},
	}
	before := Aggregate(base, DefaultOptions()).TotalNetWorth
	assertDecimal(t, "250", before)

	additions := []func(domain.AccountSet) domain.AccountSet{
		func(s domain.AccountSet) domain.AccountSet {
			s.Wallets = append(append([]domain.Wallet(nil), s.Wallets...), wallet(domain.WalletTypeSavings, "0.01"))
			return s
		},
		func(s domain.AccountSet) domain.AccountSet {
			s.Wallets = append(append([]domain.Wallet(nil), s.Wallets...), wallet(domain.WalletTypeCrypto, "50"))
			return s
		},
		func(s domain.AccountSet) domain.AccountSet {
			s.Holdings = append(append([]domain.AssetHolding(nil), s.Holdings...), cryptoHolding("3", "0", "2"))
			return s
		},
		func(s domain.AccountSet) domain.AccountSet {
			s.Investments = append(append([]domain.Investment(nil), s.Investments...), domain.Investment{CurrentValue: "0"})
			return s
		},
		func(s domain.AccountSet) domain.AccountSet {
			s.CreditFacilities = append(append([]domain.CreditFacility(nil), s.CreditFacilities...), domain.CreditFacility{AvailableCredit: "10"})
			return s
		},
	}
	for i, add := range additions {
		after := Aggregate(add(base), DefaultOptions()).TotalNetWorth
		assert.True(t, after.GreaterThanOrEqual(before), "addition %d decreased net worth", i)
	}
}

func TestAggregateIsIdempotentAndDoesNotMutate(t *testing.T) {
	set := domain.AccountSet{
		Wallets:  []domain.Wallet{wallet(domain.WalletTypePrimary, " 12.30 ")},
		Holdings: []domain.AssetHolding{cryptoHolding("1", "1", "2")},
	}
	first := Aggregate(set, DefaultOptions())
	second := Aggregate(set, DefaultOptions())
	assert.Equal(t, first, second)
	assert.Equal(t, " 12.30 ", set.Wallets[0].Balance)
}

func TestAggregateNetWorthCategories(t *testing.T) {
	set := domain.AccountSet{
		Wallets:          []domain.Wallet{wallet(domain.WalletTypePrimary, "100")},
		CreditFacilities: []domain.CreditFacility{{AvailableCredit: "40"}},
	}
	opts := DefaultOptions()
	opts.NetWorthCategories = []Category{CategoryFiat, CategoryCrypto, CategoryInvestment}

	s := Aggregate(set, opts)
	assertDecimal(t, "40", s.TotalCreditAvailable)
	assertDecimal(t, "100", s.TotalNetWorth)
	assertDecimal(t, "140", NetWorth(s))
}

func TestOptionsFromNames(t *testing.T) {
	opts, err := OptionsFromNames([]string{"primary", " Business "}, []string{"fiat", "credit", "fiat"})
	require.NoError(t, err)
	assert.True(t, opts.FiatWalletTypes.Has(domain.WalletTypeBusiness))
	assert.False(t, opts.FiatWalletTypes.Has(domain.WalletTypeSavings))
	assert.Equal(t, []Category{CategoryFiat, CategoryCredit}, opts.NetWorthCategories)

	_, err = OptionsFromNames([]string{"checking"}, nil)
	assert.Error(t, err)

	_, err = OptionsFromNames(nil, []string{"real-estate"})
	assert.Error(t, err)
}
