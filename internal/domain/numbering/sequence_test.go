package numbering

import (
	"testing"

	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "CRET-00001", FormatNumber(PartitionCustomerReturn, 1))
	assert.Equal(t, "SRET-00042", FormatNumber(PartitionSupplierReturn, 42))
	assert.Equal(t, "CRET-123456", FormatNumber(PartitionCustomerReturn, 123456),
		"numbers beyond the pad width keep all digits")
}

func TestParseNumber(t *testing.T) {
	t.Run("round-trips formatted numbers", func(t *testing.T) {
		for _, n := range []int64{1, 99, 100000} {
			parsed, err := ParseNumber(PartitionCustomerReturn, FormatNumber(PartitionCustomerReturn, n))
			require.NoError(t, err)
			assert.Equal(t, n, parsed)
		}
	})

	t.Run("rejects numbers from another partition", func(t *testing.T) {
		_, err := ParseNumber(PartitionCustomerReturn, "SRET-00001")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.KindIntegrity, domainErr.Kind)
		assert.Equal(t, "DOCUMENT_NUMBER_CORRUPT", domainErr.Code)
	})

	t.Run("rejects non-numeric sequence parts", func(t *testing.T) {
		for _, corrupt := range []string{"CRET-XXXXX", "CRET-", "CRET00001"} {
			_, err := ParseNumber(PartitionCustomerReturn, corrupt)
			require.Error(t, err, "expected %q to be rejected", corrupt)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, shared.KindIntegrity, domainErr.Kind)
		}
	})
}

func TestPartition(t *testing.T) {
	assert.Equal(t, "CRET-", PartitionCustomerReturn.Prefix())
	assert.Equal(t, "SRET-", PartitionSupplierReturn.Prefix())
	assert.True(t, PartitionCustomerReturn.IsValid())
	assert.False(t, Partition("invoice").IsValid())
}
