package postgres

import (
	"testing"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildListQueryNoFilter(t *testing.T) {
	q, args := buildListQuery("u1", repository.LogFilter{})
	require.Contains(t, q, "WHERE user_id=$1")
	require.Contains(t, q, "ORDER BY date ASC")
	require.NotContains(t, q, "LIMIT")
	require.Equal(t, []any{"u1"}, args)
}

func TestBuildListQueryAllClauses(t *testing.T) {
	from := date("2024-01-10")
	to := date("2024-01-31")
	q, args := buildListQuery("u1", repository.LogFilter{From: from, To: to, Limit: 2})

	require.Contains(t, q, "AND date>=$2")
	require.Contains(t, q, "AND date<=$3")
	require.Contains(t, q, "LIMIT $4")
	require.Equal(t, []any{"u1", *from, *to, 2}, args)
}

func TestBuildListQueryOnlyTo(t *testing.T) {
	to := date("2024-01-31")
	q, args := buildListQuery("u1", repository.LogFilter{To: to})

	// with no from clause, to must take the second slot
	require.Contains(t, q, "AND date<=$2")
	require.NotContains(t, q, ">=")
	require.Equal(t, []any{"u1", *to}, args)
}

func TestBuildListQueryLimitIgnoredWhenZero(t *testing.T) {
	q, args := buildListQuery("u1", repository.LogFilter{Limit: 0})
	require.NotContains(t, q, "LIMIT")
	require.Len(t, args, 1)
}
