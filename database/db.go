package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"cerberus/config"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

var (
	// SQLDB is set when DB_DRIVER is sqlite3 or postgres.
	SQLDB *sql.DB
	// MongoClient is set when DB_DRIVER is mongo.
	MongoClient *mongo.Client
)

// InitDB opens the submission store selected by config.AppConfig.DBDriver.
func InitDB() error {
	switch config.AppConfig.DBDriver {
	case DriverSQLite, DriverPostgres:
		db, err := OpenSQL(config.AppConfig.DBDriver, config.AppConfig.DatabaseURL)
		if err != nil {
			return err
		}
		SQLDB = db
	case DriverMongo:
		client, err := ConnectMongo(config.AppConfig.DatabaseURL)
		if err != nil {
			return err
		}
		MongoClient = client
	default:
		return fmt.Errorf("database: unsupported driver %q", config.AppConfig.DBDriver)
	}
	log.Printf("Connected to %s successfully!", config.AppConfig.DBDriver)
	return nil
}

// OpenSQL opens and pings a database/sql handle, retrying the ping while the
// server comes up.
func OpenSQL(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", driver, err)
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			return db, nil
		}
		time.Sleep(time.Second)
	}
	_ = db.Close()
	return nil, fmt.Errorf("%s: ping failed after retries: %w", driver, err)
}

// ConnectMongo initializes the MongoDB connection.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Ping checks whichever store InitDB opened.
func Ping(ctx context.Context) error {
	switch {
	case SQLDB != nil:
		return SQLDB.PingContext(ctx)
	case MongoClient != nil:
		return MongoClient.Ping(ctx, nil)
	}
	return fmt.Errorf("database: not initialized")
}

// Close releases whichever store InitDB opened.
func Close(ctx context.Context) error {
	if SQLDB != nil {
		return SQLDB.Close()
	}
	if MongoClient != nil {
		return MongoClient.Disconnect(ctx)
	}
	return nil
}
