package services

import (
	"context"
	"errors"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/providers"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/repositories"
)

type ConnectionService interface {
	// Register links a user to a provider. Registering twice is a no-op
	// that returns the existing connection.
	Register(ctx context.Context, userID, providerName string) (result models.RegisterOut, err error)
	// Deregister tears a provider link down: upstream first, then every
	// dependent row in one transaction. A missing connection is a no-op.
	Deregister(ctx context.Context, userID, providerName string) (err error)
	AttachInstitution(ctx context.Context, in models.AttachInstitutionIn) (result models.InstitutionConnection, err error)
	GetByUser(ctx context.Context, userID string) (result []models.ConnectionDetail, err error)
}

type connection service

var _ ConnectionService = (*connection)(nil)

func (cs *connection) Register(ctx context.Context, userID, providerName string) (result models.RegisterOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	adapter, err := cs.srv.registry.Get(providerName)
	if err != nil {
		err = models.GetErrMap(models.ErrKeyUnknownProvider, providerName)
		return
	}

	provider, err := cs.srv.sqlRepo.GetProviderRepository().GetOneByName(ctx, providerName)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyProviderNotFound)
		return
	}

	connRepo := cs.srv.sqlRepo.GetConnectionRepository()

	existing, err := connRepo.GetProviderConnection(ctx, userID, provider.ID)
	if err == nil {
		result.Connection = existing
		return
	}
	if !errors.Is(err, common.ErrDataNotFound) {
		return
	}

	var registration providers.Registration
	err = cs.srv.retryer.Do(ctx, func() error {
		regErr := error(nil)
		registration, regErr = adapter.Register(ctx, userID)
		if providers.IsAuthError(regErr) {
			return cs.srv.retryer.StopRetryWithErr(regErr)
		}
		return regErr
	})
	if err != nil {
		err = checkProviderError(err)
		return
	}

	id, err := connRepo.CreateProviderConnection(ctx, models.CreateProviderConnection{
		UserID:         userID,
		ProviderID:     provider.ID,
		ProviderUserID: registration.ProviderUserID,
	})
	if err != nil {
		return
	}

	result.Connection, err = connRepo.GetProviderConnectionByID(ctx, id)
	result.RedirectURL = registration.RedirectURL
	return
}

func (cs *connection) Deregister(ctx context.Context, userID, providerName string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	adapter, err := cs.srv.registry.Get(providerName)
	if err != nil {
		err = models.GetErrMap(models.ErrKeyUnknownProvider, providerName)
		return
	}

	provider, err := cs.srv.sqlRepo.GetProviderRepository().GetOneByName(ctx, providerName)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyProviderNotFound)
		return
	}

	conn, err := cs.srv.sqlRepo.GetConnectionRepository().GetProviderConnection(ctx, userID, provider.ID)
	if errors.Is(err, common.ErrDataNotFound) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	err = cs.srv.retryer.Do(ctx, func() error {
		deregErr := adapter.Deregister(ctx, conn.ProviderUserID)
		// the provider already forgot this user; proceed with local cleanup
		if providers.IsNotFound(deregErr) {
			return nil
		}
		if providers.IsAuthError(deregErr) {
			return cs.srv.retryer.StopRetryWithErr(deregErr)
		}
		return deregErr
	})
	if err != nil {
		err = checkProviderError(err)
		return
	}

	err = cs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetTransactionRepository().DeleteByProviderConnection(ctx, conn.ID); err != nil {
			return err
		}
		if err := r.GetAccountRepository().DeleteByProviderConnection(ctx, conn.ID); err != nil {
			return err
		}
		if err := r.GetConnectionRepository().DeleteInstitutionConnections(ctx, conn.ID); err != nil {
			return err
		}
		return r.GetConnectionRepository().DeleteProviderConnection(ctx, conn.ID)
	})
	return
}

func (cs *connection) AttachInstitution(ctx context.Context, in models.AttachInstitutionIn) (result models.InstitutionConnection, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	connRepo := cs.srv.sqlRepo.GetConnectionRepository()

	conn, err := connRepo.GetProviderConnectionByID(ctx, in.ProviderConnectionID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyConnectionNotFound)
		return
	}

	if _, err = cs.srv.sqlRepo.GetInstitutionRepository().GetOneByID(ctx, in.InstitutionID); err != nil {
		err = checkDatabaseError(err, models.ErrKeyInstitutionNotFound)
		return
	}

	id, err := connRepo.UpsertInstitutionConnection(ctx, models.CreateInstitutionConnection{
		ProviderConnectionID: conn.ID,
		InstitutionID:        in.InstitutionID,
		ExternalID:           in.ExternalID,
	})
	if err != nil {
		return
	}

	result = models.InstitutionConnection{
		ID:                   id,
		ProviderConnectionID: conn.ID,
		InstitutionID:        in.InstitutionID,
		ExternalID:           in.ExternalID,
	}
	return
}

func (cs *connection) GetByUser(ctx context.Context, userID string) (result []models.ConnectionDetail, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = cs.srv.sqlRepo.GetConnectionRepository().GetConnectionsByUser(ctx, userID)
	return
}
