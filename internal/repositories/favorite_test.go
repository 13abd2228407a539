package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupFavoritePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'investor',
		is_admin BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS investment_objects (
		id BIGSERIAL PRIMARY KEY,
		broker_id BIGINT,
		title TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		property_type TEXT NOT NULL DEFAULT '',
		area DOUBLE PRECISION,
		price DOUBLE PRECISION,
		yield_percent DOUBLE PRECISION,
		payback_years DOUBLE PRECISION,
		description TEXT,
		images TEXT[],
		videos TEXT[],
		documents TEXT[],
		status TEXT NOT NULL DEFAULT 'available',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		object_id BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedFavoriteFixture creates an investor, a broker and one object owned by
// the broker, returning (investorID, brokerID, objectID).
func seedFavoriteFixture(t *testing.T, db *sqlx.DB) (int64, int64, int64) {
	t.Helper()

	var investorID, brokerID, objectID int64

	err := db.Get(&investorID,
		`INSERT INTO users (email, name, role) VALUES ('ivan@example.com', 'Иван', 'investor') RETURNING id`)
	assert.NoError(t, err)

	err = db.Get(&brokerID,
		`INSERT INTO users (email, name, role) VALUES ('maria@example.com', 'Мария', 'broker') RETURNING id`)
	assert.NoError(t, err)

	err = db.Get(&objectID,
		`INSERT INTO investment_objects (broker_id, title, city, price, yield_percent, images)
		 VALUES ($1, 'Лофт на Чистых прудах', 'Москва', 12500000, 8.5, '{"https://cdn.example.com/loft.jpg"}')
		 RETURNING id`, brokerID)
	assert.NoError(t, err)

	return investorID, brokerID, objectID
}

func TestFavoriteWriteRepository_InsertAndDelete(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	investorID, _, objectID := seedFavoriteFixture(t, db)

	repo := NewFavoriteWriteRepository(db, nil)
	ctx := context.Background()

	fav, err := repo.Insert(ctx, investorID, objectID)
	assert.NoError(t, err)
	assert.NotNil(t, fav)
	assert.NotZero(t, fav.ID)
	assert.Equal(t, investorID, fav.UserID)
	assert.Equal(t, objectID, fav.ObjectID)

	deleted, err := repo.Delete(ctx, investorID, objectID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, investorID, objectID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestFavoriteReadRepository_GetByPair(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	investorID, _, objectID := seedFavoriteFixture(t, db)

	writeRepo := NewFavoriteWriteRepository(db, nil)
	readRepo := NewFavoriteReadRepository(db, nil)
	ctx := context.Background()

	t.Run("Absent", func(t *testing.T) {
		fav, err := readRepo.GetByPair(ctx, investorID, objectID)
		assert.NoError(t, err)
		assert.Nil(t, fav)
	})

	t.Run("Present", func(t *testing.T) {
		created, err := writeRepo.Insert(ctx, investorID, objectID)
		assert.NoError(t, err)

		fav, err := readRepo.GetByPair(ctx, investorID, objectID)
		assert.NoError(t, err)
		assert.NotNil(t, fav)
		assert.Equal(t, created.ID, fav.ID)
	})
}

func TestFavoriteReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	investorID, _, objectID := seedFavoriteFixture(t, db)

	writeRepo := NewFavoriteWriteRepository(db, nil)
	readRepo := NewFavoriteReadRepository(db, nil)
	ctx := context.Background()

	_, err := writeRepo.Insert(ctx, investorID, objectID)
	assert.NoError(t, err)

	favorites, err := readRepo.ListByUser(ctx, investorID)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)

	fav := favorites[0]
	assert.Equal(t, investorID, fav.UserID)
	assert.Equal(t, objectID, fav.ObjectID)
	assert.NotNil(t, fav.CreatedAt)
	assert.Equal(t, "Лофт на Чистых прудах", fav.Object.Title)
	assert.Equal(t, "Москва", fav.Object.City)
	assert.Equal(t, 12500000.0, fav.Object.Price)
	assert.Equal(t, 8.5, fav.Object.YieldPercent)
	assert.Equal(t, pq.StringArray{"https://cdn.example.com/loft.jpg"}, fav.Object.Images)

	t.Run("OtherUserSeesNothing", func(t *testing.T) {
		favorites, err := readRepo.ListByUser(ctx, 999999)
		assert.NoError(t, err)
		assert.Empty(t, favorites)
	})
}

func TestFavoriteReadRepository_GetNotifyTarget(t *testing.T) {
	db, teardown := setupFavoritePostgresContainer(t)
	defer teardown()

	investorID, brokerID, objectID := seedFavoriteFixture(t, db)

	readRepo := NewFavoriteReadRepository(db, nil)
	ctx := context.Background()

	t.Run("OwnedObject", func(t *testing.T) {
		target, err := readRepo.GetNotifyTarget(ctx, investorID, objectID)
		assert.NoError(t, err)
		assert.NotNil(t, target)
		assert.Equal(t, brokerID, target.BrokerID)
		assert.Equal(t, "Лофт на Чистых прудах", target.ObjectTitle)
		assert.Equal(t, "Иван", target.InvestorName)
	})

	t.Run("OwnerlessObject", func(t *testing.T) {
		var ownerlessID int64
		err := db.Get(&ownerlessID,
			`INSERT INTO investment_objects (title) VALUES ('Студия') RETURNING id`)
		assert.NoError(t, err)

		target, err := readRepo.GetNotifyTarget(ctx, investorID, ownerlessID)
		assert.NoError(t, err)
		assert.Nil(t, target)
	})

	t.Run("MissingObject", func(t *testing.T) {
		target, err := readRepo.GetNotifyTarget(ctx, investorID, 999999)
		assert.NoError(t, err)
		assert.Nil(t, target)
	})
}
