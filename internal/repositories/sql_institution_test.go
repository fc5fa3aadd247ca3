package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
)

func TestInstitutionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(institutionTestSuite))
}

type institutionTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo InstitutionRepository
}

func (suite *institutionTestSuite) SetupTest() {
	var err error
	suite.db, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.repo = NewSQLRepository(suite.db, suite.db, config.Config{}).GetInstitutionRepository()
}

func (suite *institutionTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *institutionTestSuite) TestRepository_Upsert() {
	in := models.InstitutionUpsert{
		ProviderID:            1,
		ProviderInstitutionID: "acme_bank_xo",
		Name:                  "Acme Bank",
		Country:               "XO",
		Enabled:               true,
	}

	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "test success",
			setupMocks: func() {
				suite.mock.ExpectExec(regexp.QuoteMeta(queryInstitutionUpsert)).
					WithArgs(in.ProviderID, in.ProviderInstitutionID, in.Name, in.LogoURL, in.Country, in.Enabled, in.Demo).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "test no rows affected",
			setupMocks: func() {
				suite.mock.ExpectExec(regexp.QuoteMeta(queryInstitutionUpsert)).
					WithArgs(in.ProviderID, in.ProviderInstitutionID, in.Name, in.LogoURL, in.Country, in.Enabled, in.Demo).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: common.ErrNoRowsAffected,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setupMocks()

			err := suite.repo.Upsert(context.Background(), in)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.T(), err, tc.wantErr)
				return
			}
			assert.NoError(suite.T(), err)
		})
	}
}

func (suite *institutionTestSuite) TestRepository_GetList() {
	now := time.Now()
	enabled := true
	opts := models.InstitutionFilterOptions{ProviderID: 1, Enabled: &enabled, Limit: 10}

	query, _, err := buildListInstitutionQuery(opts)
	require.NoError(suite.T(), err)

	rows := sqlmock.NewRows([]string{
		"id", "providerId", "providerInstitutionId", "name", "logoUrl", "country", "enabled", "demo", "createdAt", "updatedAt",
	}).AddRow(1, 1, "acme_bank_xo", "Acme Bank", "", "XO", true, false, now, now)

	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	got, err := suite.repo.GetList(context.Background(), opts)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "acme_bank_xo", got[0].ProviderInstitutionID)
}

func (suite *institutionTestSuite) TestRepository_GetOneByID_NotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryInstitutionGetOneByID)).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := suite.repo.GetOneByID(context.Background(), 42)
	assert.True(suite.T(), errors.Is(err, common.ErrDataNotFound))
}
