// Package nature maps provider-native account classifications onto the
// canonical type/subtype taxonomy. The table is closed: an unknown nature
// is an error, never a default, so a liability can not silently surface as
// an asset.
package nature

import (
	"fmt"
	"strings"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
)

type Classification struct {
	Type    models.AccountType
	Subtype models.AccountSubtype
}

// natures covers every classification the registered providers emit.
// SaltEdge uses nature strings, SnapTrade account types, Vezgo wallet
// kinds, EnableBanking PSD2 cash account types.
var natures = map[string]Classification{
	// depository
	"account":    {models.AccountTypeAsset, models.AccountSubtypeDepository},
	"checking":   {models.AccountTypeAsset, models.AccountSubtypeDepository},
	"savings":    {models.AccountTypeAsset, models.AccountSubtypeDepository},
	"debit_card": {models.AccountTypeAsset, models.AccountSubtypeDepository},
	"ewallet":    {models.AccountTypeAsset, models.AccountSubtypeDepository},
	"cacc":       {models.AccountTypeAsset, models.AccountSubtypeDepository},
	"svgs":       {models.AccountTypeAsset, models.AccountSubtypeDepository},
	"tran":       {models.AccountTypeAsset, models.AccountSubtypeDepository},

	// investment
	"investment": {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"brokerage":  {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"tfsa":       {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"rrsp":       {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"ira":        {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"roth_ira":   {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"401k":       {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"pension":    {models.AccountTypeAsset, models.AccountSubtypeInvestment},
	"bonus":      {models.AccountTypeAsset, models.AccountSubtypeInvestment},

	// crypto
	"crypto":   {models.AccountTypeAsset, models.AccountSubtypeCrypto},
	"wallet":   {models.AccountTypeAsset, models.AccountSubtypeCrypto},
	"exchange": {models.AccountTypeAsset, models.AccountSubtypeCrypto},
	"defi":     {models.AccountTypeAsset, models.AccountSubtypeCrypto},

	// liabilities
	"credit_card":    {models.AccountTypeLiability, models.AccountSubtypeCreditCard},
	"card":           {models.AccountTypeLiability, models.AccountSubtypeCreditCard},
	"credit":         {models.AccountTypeLiability, models.AccountSubtypeCreditCard},
	"loan":           {models.AccountTypeLiability, models.AccountSubtypeLoan},
	"mortgage":       {models.AccountTypeLiability, models.AccountSubtypeLoan},
	"line_of_credit": {models.AccountTypeLiability, models.AccountSubtypeLoan},
	"overdraft":      {models.AccountTypeLiability, models.AccountSubtypeLoan},

	// everything else providers report as a holding
	"insurance": {models.AccountTypeAsset, models.AccountSubtypeOther},
}

// Map resolves a provider-native nature. Nature matching is
// case-insensitive; providers are not consistent about casing.
func Map(nature string) (Classification, error) {
	c, ok := natures[strings.ToLower(strings.TrimSpace(nature))]
	if !ok {
		return Classification{}, fmt.Errorf("%w: %q", common.ErrUnmappedNature, nature)
	}
	return c, nil
}

// Check verifies every given nature is mapped. Setup runs this against each
// adapter's KnownNatures at startup so a new provider classification fails
// the deploy, not a sync run.
func Check(known []string) error {
	var missing []string
	for _, n := range known {
		if _, err := Map(n); err != nil {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", common.ErrUnmappedNature, strings.Join(missing, ", "))
	}
	return nil
}
