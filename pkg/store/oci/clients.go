// Package oci adapts the OCI SDK clients to the store interfaces the
// services consume. Authentication, transport, and retries stay with the
// SDK; these types only translate requests, pagination, and field types.
package oci

import (
	"fmt"
	"time"

	"github.com/de-tools/tenancy-atlas/pkg/services/inventory"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/mysql"
)

// Explorer creates per-region store sets from a shared configuration
// provider.
type Explorer struct {
	provider common.ConfigurationProvider
}

func NewExplorer(provider common.ConfigurationProvider) *Explorer {
	return &Explorer{provider: provider}
}

func (e *Explorer) ForRegion(region string) (inventory.RegionStores, error) {
	computeClient, err := core.NewComputeClientWithConfigurationProvider(e.provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}
	computeClient.SetRegion(region)

	storageClient, err := core.NewBlockstorageClientWithConfigurationProvider(e.provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create block storage client: %w", err)
	}
	storageClient.SetRegion(region)

	mysqlClient, err := mysql.NewDbSystemClientWithConfigurationProvider(e.provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create mysql client: %w", err)
	}
	mysqlClient.SetRegion(region)

	return &regionStores{
		compute: &computeStore{client: computeClient},
		storage: &storageStore{client: storageClient},
		mysql:   &mysqlStore{client: mysqlClient},
	}, nil
}

type regionStores struct {
	compute *computeStore
	storage *storageStore
	mysql   *mysqlStore
}

func (r *regionStores) Compute() inventory.ComputeStore { return r.compute }
func (r *regionStores) Storage() inventory.StorageStore { return r.storage }
func (r *regionStores) MySQL() inventory.MySQLStore     { return r.mysql }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefBool(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func derefFloat32(v *float32) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

func sdkTime(t *common.SDKTime) *time.Time {
	if t == nil {
		return nil
	}
	tt := t.Time
	return &tt
}
