package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/tenancy-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockComputeStore struct{ mock.Mock }

func (m *mockComputeStore) ListInstances(ctx context.Context, compartmentID string) ([]domain.InstanceSummary, error) {
	args := m.Called(ctx, compartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstanceSummary), args.Error(1)
}

func (m *mockComputeStore) ListBootVolumeAttachments(
	ctx context.Context,
	compartmentID, availabilityDomain, instanceID string,
) ([]domain.VolumeAttachment, error) {
	args := m.Called(ctx, compartmentID, availabilityDomain, instanceID)
	return args.Get(0).([]domain.VolumeAttachment), args.Error(1)
}

func (m *mockComputeStore) ListVolumeAttachments(
	ctx context.Context,
	compartmentID, availabilityDomain, instanceID string,
) ([]domain.VolumeAttachment, error) {
	args := m.Called(ctx, compartmentID, availabilityDomain, instanceID)
	return args.Get(0).([]domain.VolumeAttachment), args.Error(1)
}

func (m *mockComputeStore) GetImage(ctx context.Context, imageID string) (domain.Image, error) {
	args := m.Called(ctx, imageID)
	return args.Get(0).(domain.Image), args.Error(1)
}

type mockStorageStore struct{ mock.Mock }

func (m *mockStorageStore) GetBootVolume(ctx context.Context, volumeID string) (domain.Volume, error) {
	args := m.Called(ctx, volumeID)
	return args.Get(0).(domain.Volume), args.Error(1)
}

func (m *mockStorageStore) GetVolume(ctx context.Context, volumeID string) (domain.Volume, error) {
	args := m.Called(ctx, volumeID)
	return args.Get(0).(domain.Volume), args.Error(1)
}

type mockMySQLStore struct{ mock.Mock }

func (m *mockMySQLStore) ListDBSystems(ctx context.Context, compartmentID string) ([]domain.DBSystemSummary, error) {
	args := m.Called(ctx, compartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DBSystemSummary), args.Error(1)
}

func (m *mockMySQLStore) GetDBSystem(ctx context.Context, dbSystemID string) (domain.DBSystemDetails, error) {
	args := m.Called(ctx, dbSystemID)
	return args.Get(0).(domain.DBSystemDetails), args.Error(1)
}

type stubStores struct {
	compute *mockComputeStore
	storage *mockStorageStore
	mysql   *mockMySQLStore
}

func (s *stubStores) Compute() ComputeStore { return s.compute }
func (s *stubStores) Storage() StorageStore { return s.storage }
func (s *stubStores) MySQL() MySQLStore     { return s.mysql }

type stubFactory struct{ stores *stubStores }

func (f *stubFactory) ForRegion(_ string) (RegionStores, error) { return f.stores, nil }

func newStubStores() *stubStores {
	return &stubStores{
		compute: new(mockComputeStore),
		storage: new(mockStorageStore),
		mysql:   new(mockMySQLStore),
	}
}

var compartment = domain.Compartment{ID: "ocid1.compartment.oc1..a", Name: "prod", State: "ACTIVE"}

func TestCollect_RunningInstanceRecord(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	stores := newStubStores()
	stores.compute.On("ListInstances", mock.Anything, compartment.ID).Return([]domain.InstanceSummary{{
		ID:                 "ocid1.instance.oc1..i1",
		DisplayName:        "web-1",
		Shape:              "VM.Standard3.Flex",
		State:              "RUNNING",
		AvailabilityDomain: "AD-1",
		ImageID:            "ocid1.image.oc1..img1",
		OCPUs:              2,
		MemoryInGBs:        16,
		TimeCreated:        &created,
	}}, nil)
	stores.compute.On("GetImage", mock.Anything, "ocid1.image.oc1..img1").
		Return(domain.Image{OperatingSystem: "Windows"}, nil)
	stores.compute.On("ListBootVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i1").
		Return([]domain.VolumeAttachment{{VolumeID: "ocid1.bootvolume.oc1..b1"}}, nil)
	stores.compute.On("ListVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i1").
		Return([]domain.VolumeAttachment{{VolumeID: "ocid1.volume.oc1..v1"}}, nil)
	stores.storage.On("GetBootVolume", mock.Anything, "ocid1.bootvolume.oc1..b1").
		Return(domain.Volume{ID: "ocid1.bootvolume.oc1..b1", SizeInMBs: 51200}, nil)
	stores.storage.On("GetVolume", mock.Anything, "ocid1.volume.oc1..v1").
		Return(domain.Volume{ID: "ocid1.volume.oc1..v1", SizeInMBs: 102400}, nil)
	stores.mysql.On("ListDBSystems", mock.Anything, compartment.ID).Return([]domain.DBSystemSummary{}, nil)

	collector := NewCollector(&stubFactory{stores: stores})
	inv, err := collector.Collect(ctx, []string{"me-jeddah-1"}, []domain.Compartment{compartment})
	require.NoError(t, err)
	require.Len(t, inv.Instances, 1)

	rec := inv.Instances[0]
	assert.Equal(t, "me-jeddah-1", rec.Region)
	assert.Equal(t, "prod", rec.CompartmentName)
	assert.Equal(t, "Windows", rec.OperatingSystem)
	assert.Equal(t, int64(51200), rec.BootSizeInMBs)
	assert.Equal(t, int64(102400), rec.BlockSizeInMBs)
	assert.Equal(t, []string{"ocid1.bootvolume.oc1..b1"}, rec.BootVolumeIDs)
	assert.Equal(t, []string{"ocid1.volume.oc1..v1"}, rec.BlockVolumeIDs)
	assert.InDelta(t, 75.92, rec.ComputeCostPerMonth, 1e-9)
	assert.InDelta(t, 2*0.092*730, rec.OSCostPerMonth, 1e-9)
	assert.InDelta(t, 1.275+2.55, rec.StorageCostPerMonth, 1e-9)
	assert.InDelta(t, rec.ComputeCostPerMonth+rec.OSCostPerMonth+rec.StorageCostPerMonth, rec.TotalCostPerMonth, 1e-9)
	assert.True(t, rec.PricingKnown)
	stores.compute.AssertExpectations(t)
	stores.storage.AssertExpectations(t)
}

func TestCollect_TerminatedInstanceSkipped(t *testing.T) {
	ctx := context.Background()

	stores := newStubStores()
	stores.compute.On("ListInstances", mock.Anything, compartment.ID).Return([]domain.InstanceSummary{{
		ID:    "ocid1.instance.oc1..gone",
		Shape: "VM.Standard3.Flex",
		State: domain.InstanceStateTerminated,
	}}, nil)
	stores.mysql.On("ListDBSystems", mock.Anything, compartment.ID).Return([]domain.DBSystemSummary{}, nil)

	collector := NewCollector(&stubFactory{stores: stores})
	inv, err := collector.Collect(ctx, []string{"me-jeddah-1"}, []domain.Compartment{compartment})
	require.NoError(t, err)
	assert.Empty(t, inv.Instances)
	// no detail calls for terminated instances
	stores.compute.AssertNotCalled(t, "GetImage", mock.Anything, mock.Anything)
}

func TestCollect_StoppedInstanceComputeCostZero(t *testing.T) {
	ctx := context.Background()

	stores := newStubStores()
	stores.compute.On("ListInstances", mock.Anything, compartment.ID).Return([]domain.InstanceSummary{{
		ID:                 "ocid1.instance.oc1..i2",
		DisplayName:        "batch-1",
		Shape:              "VM.Standard.E4.Flex",
		State:              domain.InstanceStateStopped,
		AvailabilityDomain: "AD-1",
		ImageID:            "ocid1.image.oc1..img2",
		OCPUs:              4,
		MemoryInGBs:        64,
	}}, nil)
	stores.compute.On("GetImage", mock.Anything, "ocid1.image.oc1..img2").
		Return(domain.Image{OperatingSystem: "Windows"}, nil)
	stores.compute.On("ListBootVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i2").
		Return([]domain.VolumeAttachment{{VolumeID: "ocid1.bootvolume.oc1..b2"}}, nil)
	stores.compute.On("ListVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i2").
		Return([]domain.VolumeAttachment{}, nil)
	stores.storage.On("GetBootVolume", mock.Anything, "ocid1.bootvolume.oc1..b2").
		Return(domain.Volume{ID: "ocid1.bootvolume.oc1..b2", SizeInMBs: 51200}, nil)
	stores.mysql.On("ListDBSystems", mock.Anything, compartment.ID).Return([]domain.DBSystemSummary{}, nil)

	collector := NewCollector(&stubFactory{stores: stores})
	inv, err := collector.Collect(ctx, []string{"me-jeddah-1"}, []domain.Compartment{compartment})
	require.NoError(t, err)
	require.Len(t, inv.Instances, 1)

	rec := inv.Instances[0]
	assert.Equal(t, 0.0, rec.ComputeCostPerMonth)
	assert.Greater(t, rec.OSCostPerMonth, 0.0)
	assert.Greater(t, rec.StorageCostPerMonth, 0.0)
	assert.InDelta(t, rec.OSCostPerMonth+rec.StorageCostPerMonth, rec.TotalCostPerMonth, 1e-9)
}

func TestCollect_StoppedInstanceUnknownShapeFlagged(t *testing.T) {
	ctx := context.Background()

	stores := newStubStores()
	stores.compute.On("ListInstances", mock.Anything, compartment.ID).Return([]domain.InstanceSummary{{
		ID:                 "ocid1.instance.oc1..i4",
		Shape:              "VM.DenseIO2.8",
		State:              domain.InstanceStateStopped,
		AvailabilityDomain: "AD-1",
		ImageID:            "ocid1.image.oc1..img4",
		OCPUs:              8,
		MemoryInGBs:        120,
	}}, nil)
	stores.compute.On("GetImage", mock.Anything, "ocid1.image.oc1..img4").
		Return(domain.Image{OperatingSystem: "Oracle Linux"}, nil)
	stores.compute.On("ListBootVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i4").
		Return([]domain.VolumeAttachment{}, nil)
	stores.compute.On("ListVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i4").
		Return([]domain.VolumeAttachment{}, nil)
	stores.mysql.On("ListDBSystems", mock.Anything, compartment.ID).Return([]domain.DBSystemSummary{}, nil)

	collector := NewCollector(&stubFactory{stores: stores})
	inv, err := collector.Collect(ctx, []string{"me-jeddah-1"}, []domain.Compartment{compartment})
	require.NoError(t, err)
	require.Len(t, inv.Instances, 1)

	// a stopped instance's shape is still looked up, so an unpriced shape
	// is flagged the same way as on a running one
	rec := inv.Instances[0]
	assert.Equal(t, 0.0, rec.ComputeCostPerMonth)
	assert.False(t, rec.PricingKnown)
}

func TestCollect_UnknownComputeShapeRecordedAsZero(t *testing.T) {
	ctx := context.Background()

	stores := newStubStores()
	stores.compute.On("ListInstances", mock.Anything, compartment.ID).Return([]domain.InstanceSummary{{
		ID:                 "ocid1.instance.oc1..i3",
		Shape:              "VM.DenseIO2.8",
		State:              "RUNNING",
		AvailabilityDomain: "AD-1",
		ImageID:            "ocid1.image.oc1..img3",
		OCPUs:              8,
		MemoryInGBs:        120,
	}}, nil)
	stores.compute.On("GetImage", mock.Anything, "ocid1.image.oc1..img3").
		Return(domain.Image{OperatingSystem: "Oracle Linux"}, nil)
	stores.compute.On("ListBootVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i3").
		Return([]domain.VolumeAttachment{}, nil)
	stores.compute.On("ListVolumeAttachments", mock.Anything, compartment.ID, "AD-1", "ocid1.instance.oc1..i3").
		Return([]domain.VolumeAttachment{}, nil)
	stores.mysql.On("ListDBSystems", mock.Anything, compartment.ID).Return([]domain.DBSystemSummary{}, nil)

	collector := NewCollector(&stubFactory{stores: stores})
	inv, err := collector.Collect(ctx, []string{"me-jeddah-1"}, []domain.Compartment{compartment})
	require.NoError(t, err)
	require.Len(t, inv.Instances, 1)
	assert.Equal(t, 0.0, inv.Instances[0].ComputeCostPerMonth)
	assert.False(t, inv.Instances[0].PricingKnown)
}

func TestCollect_DBSystems(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	stores := newStubStores()
	stores.compute.On("ListInstances", mock.Anything, compartment.ID).Return([]domain.InstanceSummary{}, nil)
	stores.mysql.On("ListDBSystems", mock.Anything, compartment.ID).Return([]domain.DBSystemSummary{
		{
			ID:                 "ocid1.mysqldbsystem.oc1..d1",
			DisplayName:        "orders-db",
			Shape:              "MySQL.VM.Standard.E3",
			State:              "ACTIVE",
			AvailabilityDomain: "AD-1",
			IsHighlyAvailable:  true,
		},
		{
			ID:    "ocid1.mysqldbsystem.oc1..d2",
			Shape: "MySQL.VM.Standard.E3",
			State: domain.DBSystemStateDeleted,
		},
	}, nil)
	stores.mysql.On("GetDBSystem", mock.Anything, "ocid1.mysqldbsystem.oc1..d1").
		Return(domain.DBSystemDetails{DataStorageSizeInGBs: 100, TimeCreated: &created}, nil)

	collector := NewCollector(&stubFactory{stores: stores})
	inv, err := collector.Collect(ctx, []string{"me-jeddah-1"}, []domain.Compartment{compartment})
	require.NoError(t, err)
	require.Len(t, inv.DBSystems, 1)

	rec := inv.DBSystems[0]
	assert.Equal(t, "orders-db", rec.DisplayName)
	assert.Equal(t, 100, rec.DataStorageSizeInGBs)
	assert.True(t, rec.IsHighlyAvailable)
	assert.Equal(t, &created, rec.TimeCreated)
	assert.InDelta(t, 29.56, rec.CostPerMonth, 1e-9)
	assert.True(t, rec.PricingKnown)
	// deleted systems are never described
	stores.mysql.AssertNotCalled(t, "GetDBSystem", mock.Anything, "ocid1.mysqldbsystem.oc1..d2")
}

func TestCollect_UnknownDBShapeFlagged(t *testing.T) {
	ctx := context.Background()

	stores := newStubStores()
	stores.compute.On("ListInstances", mock.Anything, compartment.ID).Return([]domain.InstanceSummary{}, nil)
	stores.mysql.On("ListDBSystems", mock.Anything, compartment.ID).Return([]domain.DBSystemSummary{{
		ID:    "ocid1.mysqldbsystem.oc1..d3",
		Shape: "MySQL.Exotic.512",
		State: "ACTIVE",
	}}, nil)
	stores.mysql.On("GetDBSystem", mock.Anything, "ocid1.mysqldbsystem.oc1..d3").
		Return(domain.DBSystemDetails{DataStorageSizeInGBs: 50}, nil)

	collector := NewCollector(&stubFactory{stores: stores})
	inv, err := collector.Collect(ctx, []string{"me-jeddah-1"}, []domain.Compartment{compartment})
	require.NoError(t, err)
	require.Len(t, inv.DBSystems, 1)
	assert.Equal(t, 0.0, inv.DBSystems[0].CostPerMonth)
	assert.False(t, inv.DBSystems[0].PricingKnown)
}
