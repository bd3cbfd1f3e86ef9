package numbering

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shoplite/backend/internal/domain/shared"
)

// Partition is an independent document-number stream. Numbers are gapless
// and strictly increasing within a partition; partitions never share numbers.
type Partition string

const (
	PartitionCustomerReturn Partition = "customer_return"
	PartitionSupplierReturn Partition = "supplier_return"
)

// IsValid checks if the partition is known
func (p Partition) IsValid() bool {
	return p == PartitionCustomerReturn || p == PartitionSupplierReturn
}

// Prefix returns the document number prefix for the partition
func (p Partition) Prefix() string {
	switch p {
	case PartitionCustomerReturn:
		return "CRET-"
	case PartitionSupplierReturn:
		return "SRET-"
	default:
		return ""
	}
}

// DocumentSequence is the persisted counter for one partition. The row is
// locked FOR UPDATE while a number is allocated so two requests can never
// observe the same LastNumber.
type DocumentSequence struct {
	Key        Partition `gorm:"type:varchar(50);primaryKey"`
	LastNumber int64     `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DocumentSequence) TableName() string {
	return "document_sequences"
}

// Allocator hands out the next document number for a partition. Allocation
// happens inside the caller's transaction: if the surrounding work rolls
// back, the number is released with it.
type Allocator interface {
	Next(ctx context.Context, partition Partition) (string, error)
}

// FormatNumber renders a sequence value as a document number, e.g. CRET-00042
func FormatNumber(partition Partition, n int64) string {
	return fmt.Sprintf("%s%05d", partition.Prefix(), n)
}

// ParseNumber extracts the sequence value from an existing document number.
// Used to seed a partition from legacy data; a number that does not match
// the partition format signals corrupted upstream data.
func ParseNumber(partition Partition, number string) (int64, error) {
	rest, ok := strings.CutPrefix(number, partition.Prefix())
	if !ok {
		return 0, shared.NewIntegrityError("DOCUMENT_NUMBER_CORRUPT",
			fmt.Sprintf("Document number %q does not match partition %s", number, partition))
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || n < 0 {
		return 0, shared.NewIntegrityError("DOCUMENT_NUMBER_CORRUPT",
			fmt.Sprintf("Document number %q has a non-numeric sequence part", number))
	}
	return n, nil
}
