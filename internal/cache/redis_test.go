package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-market-api/internal/models"
)

// Интеграционные тесты для пакета cache:
// — поднимают реальный Redis через testcontainers-go;
// — проверяют round-trip Set/Get, промах, Delete, истечение TTL и
//   поведение на нечитаемой записи.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -race -count=1

func startRedis(t *testing.T) Cache {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const image = "docker.io/redis:7-alpine"

	req := tc.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting redis container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	cacheClient, err := NewRedis(fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "test:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cacheClient.Close() })

	return cacheClient
}

func TestRedis_RoundTrip(t *testing.T) {
	c := startRedis(t)
	ctx := context.Background()

	want := []models.Product{
		{ID: 1, Name: "чайник", Price: 1234.5, Rating: 4.7, Root: 555},
		{ID: 2, Name: "кофейник", Price: 999.0, Rating: 4.2, Root: 556},
	}
	require.NoError(t, c.Set(ctx, "products", want, time.Minute))

	var got []models.Product
	require.NoError(t, c.Get(ctx, "products", &got))
	require.Equal(t, want, got)
}

func TestRedis_Miss(t *testing.T) {
	c := startRedis(t)

	var got []models.Product
	err := c.Get(context.Background(), "absent", &got)
	require.ErrorIs(t, err, ErrMiss)
}

func TestRedis_Delete(t *testing.T) {
	c := startRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "victim", []models.Product{{ID: 1}}, time.Minute))
	require.NoError(t, c.Delete(ctx, "victim"))

	var got []models.Product
	require.ErrorIs(t, c.Get(ctx, "victim", &got), ErrMiss)

	// Удаление отсутствующего ключа не является ошибкой.
	require.NoError(t, c.Delete(ctx, "victim"))
}

func TestRedis_TTLExpiry(t *testing.T) {
	c := startRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "ephemeral", []models.Product{{ID: 1}}, time.Second))

	var got []models.Product
	require.NoError(t, c.Get(ctx, "ephemeral", &got))

	time.Sleep(1500 * time.Millisecond)
	require.ErrorIs(t, c.Get(ctx, "ephemeral", &got), ErrMiss)
}

// TestRedis_UndecodableValue — запись есть, но не декодируется в dest:
// это ErrUnavailable, не промах.
func TestRedis_UndecodableValue(t *testing.T) {
	c := startRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "typed", []models.Product{{ID: 1}}, time.Minute))

	var wrong int
	err := c.Get(ctx, "typed", &wrong)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNewRedis_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedis("not-a-url", "")
	require.Error(t, err)
}
