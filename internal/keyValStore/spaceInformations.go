package keyValStore

import (
	"errors"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/disk"
	"github.com/sirupsen/logrus"
)

const bytesPerGB = 1024 * 1024 * 1024

func (sc *StoreConfig) checkConfig() error {
	if sc.Path == "" {
		return errors.New("no path provided in configuration")
	}
	if err := os.MkdirAll(sc.Path, 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	info, err := os.Stat(sc.Path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("path is not a directory")
	}
	if sc.MinimumFreeSpace == 0 {
		return nil
	}

	usage, err := disk.Usage(sc.Path)
	if err != nil {
		return fmt.Errorf("disk usage for %s: %w", sc.Path, err)
	}
	if usage.Free/bytesPerGB < sc.MinimumFreeSpace {
		return fmt.Errorf(
			"not enough space available on disk: %d GB free, %d GB required",
			usage.Free/bytesPerGB,
			sc.MinimumFreeSpace,
		)
	}
	return nil
}

// displayDiskUsage logs the filesystem usage of the store path.
func displayDiskUsage(log *logrus.Logger, path string) error {
	usage, err := disk.Usage(path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"Path":       path,
		"Filesystem": usage.Fstype,
		"Total (GB)": fmt.Sprintf("%.2f", float64(usage.Total)/1e9),
		"Used (GB)":  fmt.Sprintf("%.2f", float64(usage.Used)/1e9),
		"Free (GB)":  fmt.Sprintf("%.2f", float64(usage.Free)/1e9),
	}).Info("Disk Usage")
	return nil
}
