// integration_test.go
//
// Hooomz OS — back-office data service for the Hooomz construction management application
// Copyright (c) 2026 Hooomz
//
// This file is part of hooomz-os.
// hooomz-os is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// hooomz-os is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with hooomz-os.
// If not, see <https://www.gnu.org/licenses/>.

package database_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/nrmontgomery1984-cell/hooomz-os/data"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/config"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/database"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/services"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	_ "github.com/go-sql-driver/mysql"
)

const mariadbPort = nat.Port("3306/tcp")

// TestWithMariaDB runs the service layer against a real MariaDB container,
// provisioned from the embedded DDL rather than auto-migration, to catch
// drift between the two.
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11"
	}

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(mariadbPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(mariadbPort),
				wait.ForLog("ready for connections").WithStartupTimeout(60*time.Second),
			),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, mariadbPort)
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	if err := provisionMariaDB(host, port.Port()); err != nil {
		t.Fatalf("Failed to provision database: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "hooomz",
		DBUser:            "hooomz_app",
		DBPassword:        "apppass",
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	t.Run("ProjectLifecycle", func(t *testing.T) {
		testProjectLifecycle(t, db)
	})

	t.Run("GateAcrossJSONColumn", func(t *testing.T) {
		testGateAcrossJSONColumn(t, db)
	})
}

// provisionMariaDB creates the schema and app user as root, then applies
// the embedded DDL the way the production initdb job does.
func provisionMariaDB(host, port string) error {
	dsn := fmt.Sprintf("root:rootpass@tcp(%s:%s)/?multiStatements=true", host, port)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	// The container accepts connections slightly before auth is ready.
	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready: %w", err)
	}

	setup := []string{
		"CREATE DATABASE IF NOT EXISTS hooomz",
		"CREATE USER IF NOT EXISTS 'hooomz_app'@'%' IDENTIFIED BY 'apppass'",
	}
	for _, q := range setup {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%w: when executing > %s", err, q)
		}
	}

	if err := executeSQL(db, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("tables init sql: %w", err)
	}
	if err := executeSQL(db, data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("privileges init sql: %w", err)
	}
	return nil
}

// executeSQL runs a multi-statement script, stripping line comments.
func executeSQL(db *sql.DB, script string) error {
	var lines []string
	for _, l := range strings.Split(script, "\n") {
		if idx := strings.Index(l, "--"); idx >= 0 {
			l = l[:idx]
		}
		lines = append(lines, l)
	}

	queries := strings.Split(strings.Join(lines, "\n"), ";")
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%w: when executing > %s", err, q)
		}
	}
	return nil
}

// testProjectLifecycle walks a project through phase transitions and the
// task rollup against the real schema.
func testProjectLifecycle(t *testing.T, db *gorm.DB) {
	project, err := services.CreateProject(db, services.ProjectInput{
		Name:       "Integration house",
		ClientName: "QA",
	})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	loop, err := services.CreateLoop(db, project.ID, services.LoopInput{Name: "Foundation", Trade: "concrete"})
	if err != nil {
		t.Fatalf("Failed to create loop: %v", err)
	}

	task, err := services.CreateTask(db, loop.ID, services.TaskInput{Name: "Footings"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if _, err := services.UpdateTaskStatus(db, task.ID, models.TaskComplete); err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	got, err := services.GetLoop(db, loop.ID)
	if err != nil {
		t.Fatalf("Failed to fetch loop: %v", err)
	}
	if got.Status != models.LoopComplete || got.HealthScore != 100 {
		t.Errorf("Unexpected rollup: status=%s score=%d", got.Status, got.HealthScore)
	}

	moved, err := services.TransitionPhase(db, project.ID, "active", services.PhaseMetadata{})
	if err != nil {
		t.Fatalf("Failed to transition phase: %v", err)
	}
	if moved.ActualStart == nil {
		t.Error("Expected actual_start stamp on entering active")
	}
}

// testGateAcrossJSONColumn verifies the affected-loops JSON round-trips
// through MariaDB and the gate reads it back correctly.
func testGateAcrossJSONColumn(t *testing.T, db *gorm.DB) {
	project, err := services.CreateProject(db, services.ProjectInput{Name: "JSON gate", Phase: "active"})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	loop, err := services.CreateLoop(db, project.ID, services.LoopInput{Name: "Siding"})
	if err != nil {
		t.Fatalf("Failed to create loop: %v", err)
	}

	order, err := services.CreateChangeOrder(db, project.ID, services.ChangeOrderInput{
		Description:  "Switch to fiber cement",
		AffectsLoops: []string{loop.ID},
	})
	if err != nil {
		t.Fatalf("Failed to create change order: %v", err)
	}
	if _, err := services.ResolveChangeOrder(db, order.ID, true); err != nil {
		t.Fatalf("Failed to approve change order: %v", err)
	}

	decision, err := services.CanModifyLoop(db, project, loop.ID)
	if err != nil {
		t.Fatalf("Gate check failed: %v", err)
	}
	if !decision.CanModify || decision.Reason != services.ReasonApprovedOrder {
		t.Errorf("Unexpected gate decision: %+v", decision)
	}
}
