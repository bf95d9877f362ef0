package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Renzo49/Prudente-Pharmacy-04/config"
	eventsController "github.com/Renzo49/Prudente-Pharmacy-04/controllers/events"
	"github.com/Renzo49/Prudente-Pharmacy-04/models"
	"github.com/Renzo49/Prudente-Pharmacy-04/routes"
	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

func main() {
	log.Println("✅ Starting Prudente Pharmacy storefront...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	// The single persisted scope: one file, one profile.
	kv, err := store.OpenKV(cfg.DataPath)
	if err != nil {
		log.Fatalf("❌ Failed to open data store: %v", err)
	}
	defer kv.Close()

	bus := store.NewBus()

	cloud, err := store.NewCloudSync(kv, bus)
	if err != nil {
		log.Fatalf("❌ Failed to init cloud sync: %v", err)
	}
	log.Printf("📱 Device ID: %s", cloud.DeviceID())

	inventory := store.NewInventoryStore(kv, cloud, bus)
	if err := inventory.Initialize(); err != nil {
		log.Fatalf("❌ Failed to initialize inventory: %v", err)
	}

	orders, err := store.NewOrderStore(kv, bus)
	if err != nil {
		log.Fatalf("❌ Failed to load orders: %v", err)
	}
	messages, err := store.NewMessageStore(kv, bus)
	if err != nil {
		log.Fatalf("❌ Failed to load messages: %v", err)
	}
	carts := store.NewCartStore(kv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Adopt newer inventory snapshots from other contexts.
	go cloud.Listen(ctx, func(products []models.Product) {
		if err := inventory.Adopt(products); err != nil {
			log.Printf("⚠️ Failed to adopt synced inventory: %v", err)
		}
	})

	// Fan store events out to connected websocket clients.
	hub := eventsController.NewHub(bus)
	go hub.Run(ctx)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Cfg:       cfg,
		KV:        kv,
		Inventory: inventory,
		Orders:    orders,
		Messages:  messages,
		Carts:     carts,
		Hub:       hub,
	})

	// Back up the data directory at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(filepath.Dir(cfg.DataPath), cfg.BackupDir, 4*24*time.Hour, 2, 0)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// startDailyBackupAtFixedTime backs up the data directory daily at a
// fixed hour and removes old backups.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next data backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("❌ Failed to back up data: %v", err)
		} else {
			log.Printf("✅ Data backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder, skipping the backup directory
// itself when it nests under the source.
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if entry.Name() == "backup" {
				continue
			}
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
