package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
)

func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(accountTestSuite))
}

type accountTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo AccountRepository
}

func (suite *accountTestSuite) SetupTest() {
	var err error
	suite.db, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.repo = NewSQLRepository(suite.db, suite.db, config.Config{}).GetAccountRepository()
}

func (suite *accountTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *accountTestSuite) TestRepository_Upsert_ReturnsID() {
	in := models.AccountUpsert{
		InstitutionConnectionID: 7,
		ProviderAccountID:       "acc-1",
		Name:                    "Main",
		Type:                    models.AccountTypeAsset,
		Subtype:                 models.AccountSubtypeDepository,
		Currency:                "EUR",
		Value:                   decimal.NewFromInt(100),
		Metadata:                models.AccountMetadata{"iban": "XO12"},
	}

	suite.mock.ExpectQuery(regexp.QuoteMeta(queryAccountUpsert)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))

	id, err := suite.repo.Upsert(context.Background(), in)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 55, id)
}

func (suite *accountTestSuite) TestRepository_GetList_FiltersByUser() {
	now := time.Now()
	opts := models.AccountFilterOptions{UserID: "user-1", Type: models.AccountTypeAsset}

	query, args, err := buildListAccountQuery(opts)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), args, 2)

	rows := sqlmock.NewRows([]string{
		"id", "institutionConnectionId", "providerAccountId", "name", "type", "subtype",
		"currency", "value", "costBasis", "metadata", "createdAt", "updatedAt",
	}).AddRow(1, 7, "acc-1", "Main", "asset", "depository", "EUR", "100", "0", []byte(`{}`), now, now)

	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("user-1", "asset").
		WillReturnRows(rows)

	got, err := suite.repo.GetList(context.Background(), opts)
	require.NoError(suite.T(), err)

	want := []models.Account{{
		ID:                      1,
		InstitutionConnectionID: 7,
		ProviderAccountID:       "acc-1",
		Name:                    "Main",
		Type:                    models.AccountTypeAsset,
		Subtype:                 models.AccountSubtypeDepository,
		Currency:                "EUR",
		Value:                   decimal.NewFromInt(100),
		CostBasis:               decimal.Zero,
		Metadata:                models.AccountMetadata{},
		CreatedAt:               now,
		UpdatedAt:               now,
	}}
	if diff := cmp.Diff(want, got, decimalComparer()); diff != "" {
		suite.T().Errorf("Result and Expected differ: (-want +got)\n%s", diff)
	}
}

func (suite *accountTestSuite) TestRepository_DeleteStale_RemovesUnreportedAccounts() {
	keep := []string{"acc-1", "acc-2"}

	suite.mock.ExpectExec(regexp.QuoteMeta(queryAccountStaleTransactionsDelete)).
		WithArgs(7, pq.Array(keep)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	suite.mock.ExpectExec(regexp.QuoteMeta(queryAccountDeleteStale)).
		WithArgs(7, pq.Array(keep)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := suite.repo.DeleteStale(context.Background(), 7, keep)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, removed)
}

func (suite *accountTestSuite) TestRepository_DeleteByProviderConnection() {
	suite.mock.ExpectExec(regexp.QuoteMeta(queryAccountDeleteByProviderConnection)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := suite.repo.DeleteByProviderConnection(context.Background(), 3)
	assert.NoError(suite.T(), err)
}
