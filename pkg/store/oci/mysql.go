package oci

import (
	"context"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/mysql"
)

type mysqlStore struct {
	client mysql.DbSystemClient
}

func (s *mysqlStore) ListDBSystems(ctx context.Context, compartmentID string) ([]domain.DBSystemSummary, error) {
	var systems []domain.DBSystemSummary
	var page *string
	for {
		resp, err := s.client.ListDbSystems(ctx, mysql.ListDbSystemsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list db systems: %w", err)
		}
		for _, item := range resp.Items {
			systems = append(systems, domain.DBSystemSummary{
				ID:                 deref(item.Id),
				DisplayName:        deref(item.DisplayName),
				Shape:              deref(item.ShapeName),
				State:              string(item.LifecycleState),
				AvailabilityDomain: deref(item.AvailabilityDomain),
				IsHighlyAvailable:  derefBool(item.IsHighlyAvailable),
				TimeCreated:        sdkTime(item.TimeCreated),
			})
		}
		if resp.OpcNextPage == nil {
			return systems, nil
		}
		page = resp.OpcNextPage
	}
}

func (s *mysqlStore) GetDBSystem(ctx context.Context, dbSystemID string) (domain.DBSystemDetails, error) {
	resp, err := s.client.GetDbSystem(ctx, mysql.GetDbSystemRequest{
		DbSystemId: common.String(dbSystemID),
	})
	if err != nil {
		return domain.DBSystemDetails{}, fmt.Errorf("failed to get db system: %w", err)
	}
	return domain.DBSystemDetails{
		DataStorageSizeInGBs: derefInt(resp.DataStorageSizeInGBs),
		TimeCreated:          sdkTime(resp.TimeCreated),
	}, nil
}
