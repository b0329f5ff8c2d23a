package oci

import (
	"context"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

type storageStore struct {
	client core.BlockstorageClient
}

func (s *storageStore) GetBootVolume(ctx context.Context, volumeID string) (domain.Volume, error) {
	resp, err := s.client.GetBootVolume(ctx, core.GetBootVolumeRequest{
		BootVolumeId: common.String(volumeID),
	})
	if err != nil {
		return domain.Volume{}, fmt.Errorf("failed to get boot volume: %w", err)
	}
	return domain.Volume{
		ID:        deref(resp.Id),
		SizeInMBs: derefInt64(resp.SizeInMBs),
	}, nil
}

func (s *storageStore) GetVolume(ctx context.Context, volumeID string) (domain.Volume, error) {
	resp, err := s.client.GetVolume(ctx, core.GetVolumeRequest{
		VolumeId: common.String(volumeID),
	})
	if err != nil {
		return domain.Volume{}, fmt.Errorf("failed to get volume: %w", err)
	}
	return domain.Volume{
		ID:        deref(resp.Id),
		SizeInMBs: derefInt64(resp.SizeInMBs),
	}, nil
}
