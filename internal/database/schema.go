package database

import (
	"context"
	"database/sql"
)

// schema holds the idempotent DDL for the four entity tables. Identifiers
// are 24-char hex strings generated by the application; restaurant_tables is
// the unit of compare-and-set mutation for the booking state.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id          CHAR(24)     NOT NULL,
		name        VARCHAR(255) NOT NULL,
		location    VARCHAR(255) NOT NULL,
		description TEXT,
		created_at  DATETIME     NOT NULL,
		updated_at  DATETIME     NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS restaurant_tables (
		id               BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		restaurant_id    CHAR(24)        NOT NULL,
		table_number     INT             NOT NULL,
		seats            INT             NOT NULL,
		is_reserved      TINYINT(1)      NOT NULL DEFAULT 0,
		reservation_date DATETIME        NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_restaurant_table (restaurant_id, table_number),
		CONSTRAINT fk_table_restaurant FOREIGN KEY (restaurant_id)
			REFERENCES restaurants (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id            CHAR(24)     NOT NULL,
		restaurant_id CHAR(24)     NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		contact       VARCHAR(64)  NOT NULL,
		table_number  INT          NOT NULL,
		date_time     DATETIME     NOT NULL,
		created_at    DATETIME     NOT NULL,
		updated_at    DATETIME     NOT NULL,
		PRIMARY KEY (id),
		KEY idx_reservations_restaurant_date (restaurant_id, date_time)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id            CHAR(24)     NOT NULL,
		restaurant_id CHAR(24)     NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		rating        TINYINT      NOT NULL,
		comment       TEXT,
		date          DATETIME     NOT NULL,
		PRIMARY KEY (id),
		KEY idx_reviews_restaurant_date (restaurant_id, date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the entity tables when they do not exist yet. It is
// safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
