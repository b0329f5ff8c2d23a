package oci

import (
	"context"
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

type computeStore struct {
	client core.ComputeClient
}

func (s *computeStore) ListInstances(ctx context.Context, compartmentID string) ([]domain.InstanceSummary, error) {
	var instances []domain.InstanceSummary
	var page *string
	for {
		resp, err := s.client.ListInstances(ctx, core.ListInstancesRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list instances: %w", err)
		}
		for _, item := range resp.Items {
			summary := domain.InstanceSummary{
				ID:                 deref(item.Id),
				DisplayName:        deref(item.DisplayName),
				Shape:              deref(item.Shape),
				State:              string(item.LifecycleState),
				AvailabilityDomain: deref(item.AvailabilityDomain),
				ImageID:            deref(item.ImageId),
				TimeCreated:        sdkTime(item.TimeCreated),
			}
			// older fixed shapes report no shape config
			if item.ShapeConfig != nil {
				summary.OCPUs = derefFloat32(item.ShapeConfig.Ocpus)
				summary.MemoryInGBs = derefFloat32(item.ShapeConfig.MemoryInGBs)
			}
			instances = append(instances, summary)
		}
		if resp.OpcNextPage == nil {
			return instances, nil
		}
		page = resp.OpcNextPage
	}
}

func (s *computeStore) ListBootVolumeAttachments(
	ctx context.Context,
	compartmentID, availabilityDomain, instanceID string,
) ([]domain.VolumeAttachment, error) {
	var attachments []domain.VolumeAttachment
	var page *string
	for {
		resp, err := s.client.ListBootVolumeAttachments(ctx, core.ListBootVolumeAttachmentsRequest{
			AvailabilityDomain: common.String(availabilityDomain),
			CompartmentId:      common.String(compartmentID),
			InstanceId:         common.String(instanceID),
			Page:               page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list boot volume attachments: %w", err)
		}
		for _, item := range resp.Items {
			attachments = append(attachments, domain.VolumeAttachment{
				VolumeID: deref(item.BootVolumeId),
			})
		}
		if resp.OpcNextPage == nil {
			return attachments, nil
		}
		page = resp.OpcNextPage
	}
}

func (s *computeStore) ListVolumeAttachments(
	ctx context.Context,
	compartmentID, availabilityDomain, instanceID string,
) ([]domain.VolumeAttachment, error) {
	var attachments []domain.VolumeAttachment
	var page *string
	for {
		resp, err := s.client.ListVolumeAttachments(ctx, core.ListVolumeAttachmentsRequest{
			AvailabilityDomain: common.String(availabilityDomain),
			CompartmentId:      common.String(compartmentID),
			InstanceId:         common.String(instanceID),
			Page:               page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list volume attachments: %w", err)
		}
		for _, item := range resp.Items {
			attachments = append(attachments, domain.VolumeAttachment{
				VolumeID: deref(item.GetVolumeId()),
			})
		}
		if resp.OpcNextPage == nil {
			return attachments, nil
		}
		page = resp.OpcNextPage
	}
}

func (s *computeStore) GetImage(ctx context.Context, imageID string) (domain.Image, error) {
	resp, err := s.client.GetImage(ctx, core.GetImageRequest{
		ImageId: common.String(imageID),
	})
	if err != nil {
		return domain.Image{}, fmt.Errorf("failed to get image: %w", err)
	}
	return domain.Image{
		OperatingSystem:        deref(resp.OperatingSystem),
		OperatingSystemVersion: deref(resp.OperatingSystemVersion),
	}, nil
}
