package services_test

import (
	"context"
	"testing"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInstitutionService_GetList(t *testing.T) {
	type args struct {
		opts models.InstitutionFilterOptions
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(h testServiceHelper, args args)
		wantErr bool
	}{
		{
			name: "test success",
			args: args{opts: models.InstitutionFilterOptions{Country: "NL"}},
			doMock: func(h testServiceHelper, args args) {
				h.mockInstitutionRepository.EXPECT().
					GetList(gomock.Any(), args.opts).
					Return([]models.Institution{{ID: 1, Name: "Fake Bank"}}, nil)
				h.mockInstitutionRepository.EXPECT().
					CountAll(gomock.Any(), args.opts).Return(1, nil)
			},
		},
		{
			name: "test error GetList",
			args: args{opts: models.InstitutionFilterOptions{Country: "NL"}},
			doMock: func(h testServiceHelper, args args) {
				h.mockInstitutionRepository.EXPECT().
					GetList(gomock.Any(), args.opts).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "test error CountAll",
			args: args{opts: models.InstitutionFilterOptions{Country: "NL"}},
			doMock: func(h testServiceHelper, args args) {
				h.mockInstitutionRepository.EXPECT().
					GetList(gomock.Any(), args.opts).
					Return([]models.Institution{{ID: 1, Name: "Fake Bank"}}, nil)
				h.mockInstitutionRepository.EXPECT().
					CountAll(gomock.Any(), args.opts).Return(0, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			testHelper := serviceTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper, tt.args)
			}

			_, _, err := testHelper.institutionService.GetList(context.Background(), tt.args.opts)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestInstitutionService_GetOneByID(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockInstitutionRepository.EXPECT().
		GetOneByID(gomock.Any(), 4).
		Return(models.Institution{}, common.ErrDataNotFound)

	_, err := testHelper.institutionService.GetOneByID(ctx, 4)
	assert.Error(t, err)
}
