package txrecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Run("should replace a stale pending placeholder with the mined record for the same hash", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusPending, Value: "1", Asset: "ETH", CreatedAt: 100, Note: "coffee"},
			{Hash: "0xbbb", Status: StatusConfirmed, Value: "2", Asset: "ETH", CreatedAt: 90},
		}
		incoming := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, Value: "1", Asset: "ETH", CreatedAt: 100, GasUsed: 21000},
		}

		merged := Merge(existing, incoming)
		require.Len(t, merged, 2)

		assert.Equal(t, "0xaaa", merged[0].Hash)
		assert.Equal(t, StatusConfirmed, merged[0].Status)
		assert.Equal(t, float64(21000), merged[0].GasUsed)
		assert.Equal(t, "0xbbb", merged[1].Hash)
	})

	t.Run("should keep data only the replaced record had", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusPending, Value: "1", Asset: "ETH", CreatedAt: 100, Note: "coffee", Tag: "personal"},
		}
		incoming := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, Value: "1", Asset: "ETH"},
		}

		merged := Merge(existing, incoming)
		require.Len(t, merged, 1)

		assert.Equal(t, "coffee", merged[0].Note)
		assert.Equal(t, "personal", merged[0].Tag)
		assert.Equal(t, int64(100), merged[0].CreatedAt)
	})

	t.Run("should keep the first occurrence when duplicate mined records disagree", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, Value: "1", Asset: "ETH", GasUsed: 21000, CreatedAt: 100},
		}
		incoming := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, Value: "1", Asset: "ETH", GasUsed: 42000, CreatedAt: 100},
		}

		merged := Merge(existing, incoming)
		require.Len(t, merged, 1)

		// Mined incoming takes precedence over the stored copy.
		assert.Equal(t, float64(42000), merged[0].GasUsed)

		// And the same rule applied to duplicates inside one batch.
		merged = Merge(nil, []TransactionRecord{
			{Hash: "0xbbb", Status: StatusConfirmed, GasUsed: 1, CreatedAt: 100},
			{Hash: "0xbbb", Status: StatusConfirmed, GasUsed: 2, CreatedAt: 100},
		})
		require.Len(t, merged, 1)
		assert.Equal(t, float64(1), merged[0].GasUsed)
	})

	t.Run("should not duplicate records whose hashes differ only in casing", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xabc", Status: StatusConfirmed, CreatedAt: 100},
		}
		incoming := []TransactionRecord{
			{Hash: "0xABC", Status: StatusConfirmed, CreatedAt: 100},
		}

		merged := Merge(existing, incoming)
		assert.Len(t, merged, 1)
	})

	t.Run("should append incoming pending records after the stored log", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, CreatedAt: 100},
		}
		incoming := []TransactionRecord{
			{Hash: "0xbbb", Status: StatusPending, CreatedAt: 200},
			{Hash: "0xccc", Status: StatusConfirmed, CreatedAt: 150},
		}

		merged := Merge(existing, incoming)
		require.Len(t, merged, 3)

		assert.Equal(t, "0xccc", merged[0].Hash)
		assert.Equal(t, "0xaaa", merged[1].Hash)
		assert.Equal(t, "0xbbb", merged[2].Hash)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusPending, Value: "1", CreatedAt: 100},
			{Hash: "0xbbb", Status: StatusConfirmed, Value: "2", CreatedAt: 90},
		}
		incoming := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, Value: "1", CreatedAt: 100, GasUsed: 21000},
			{Hash: "0xccc", Status: StatusPending, Value: "3", CreatedAt: 200},
		}

		once := Merge(existing, incoming)
		twice := Merge(once, incoming)

		assert.Equal(t, once, twice)
	})

	t.Run("should keep every distinct hash from both sides", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, CreatedAt: 1},
			{Hash: "0xbbb", Status: StatusPending, CreatedAt: 2},
		}
		incoming := []TransactionRecord{
			{Hash: "0xccc", Status: StatusConfirmed, CreatedAt: 3},
			{Hash: "0xbbb", Status: StatusConfirmed, CreatedAt: 2},
			{Hash: "0xddd", Status: StatusPending, CreatedAt: 4},
		}

		merged := Merge(existing, incoming)
		require.Len(t, merged, 4)

		seen := make(map[string]int)
		for _, record := range merged {
			seen[record.HashKey()]++
		}
		for hash, count := range seen {
			assert.Equalf(t, 1, count, "hash %s appears %d times", hash, count)
		}
	})

	t.Run("should handle an empty stored log", func(t *testing.T) {
		incoming := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusPending, CreatedAt: 100},
		}

		merged := Merge(nil, incoming)
		require.Len(t, merged, 1)
		assert.Equal(t, "0xaaa", merged[0].Hash)
	})

	t.Run("should return the stored log unchanged for an empty batch", func(t *testing.T) {
		existing := []TransactionRecord{
			{Hash: "0xaaa", Status: StatusConfirmed, CreatedAt: 100},
		}

		assert.Equal(t, existing, Merge(existing, nil))
	})
}
