package nature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name        string
		nature      string
		wantType    models.AccountType
		wantSubtype models.AccountSubtype
		wantErr     bool
	}{
		{name: "checking is depository asset", nature: "checking", wantType: models.AccountTypeAsset, wantSubtype: models.AccountSubtypeDepository},
		{name: "credit card is liability", nature: "credit_card", wantType: models.AccountTypeLiability, wantSubtype: models.AccountSubtypeCreditCard},
		{name: "mortgage is loan liability", nature: "mortgage", wantType: models.AccountTypeLiability, wantSubtype: models.AccountSubtypeLoan},
		{name: "crypto wallet", nature: "wallet", wantType: models.AccountTypeAsset, wantSubtype: models.AccountSubtypeCrypto},
		{name: "case insensitive", nature: "Savings", wantType: models.AccountTypeAsset, wantSubtype: models.AccountSubtypeDepository},
		{name: "surrounding whitespace", nature: " ira ", wantType: models.AccountTypeAsset, wantSubtype: models.AccountSubtypeInvestment},
		{name: "unknown nature fails loudly", nature: "timeshare", wantErr: true},
		{name: "empty nature fails loudly", nature: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(tt.nature)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrUnmappedNature)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantSubtype, got.Subtype)
		})
	}
}

// Every mapped nature must land inside the closed subtype enumeration, and
// never on a zero value.
func TestMap_AlwaysInEnumeration(t *testing.T) {
	valid := map[models.AccountSubtype]bool{
		models.AccountSubtypeDepository: true,
		models.AccountSubtypeInvestment: true,
		models.AccountSubtypeCrypto:     true,
		models.AccountSubtypeProperty:   true,
		models.AccountSubtypeCreditCard: true,
		models.AccountSubtypeLoan:       true,
		models.AccountSubtypeOther:      true,
	}

	for nature := range natures {
		got, err := Map(nature)
		assert.NoError(t, err, nature)
		assert.Contains(t, []models.AccountType{models.AccountTypeAsset, models.AccountTypeLiability}, got.Type, nature)
		assert.True(t, valid[got.Subtype], "subtype %q for nature %q outside enumeration", got.Subtype, nature)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check([]string{"checking", "loan", "crypto"}))

	err := Check([]string{"checking", "timeshare", "houseboat"})
	assert.ErrorIs(t, err, common.ErrUnmappedNature)
	assert.Contains(t, err.Error(), "timeshare")
	assert.Contains(t, err.Error(), "houseboat")
}
