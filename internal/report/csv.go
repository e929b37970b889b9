// Package report periodically dumps BER sweep statistics to a CSV file,
// one row per interval holding the most recent snapshot received.
package report

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/xtaci/ldpctoolbox/simulation"
)

// CSVLogger drains updates and appends a row to path every interval,
// reflecting the most recent Statistics snapshot seen so far. It returns
// once updates is closed. path is passed through time.Format the same way
// kcptun's SNMP logger treats its log path, so a path like
// "ber-20060102.csv" rotates daily.
func CSVLogger(path string, interval time.Duration, updates <-chan simulation.Report) {
	if path == "" {
		for range updates {
		}
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var latest *simulation.Statistics
	for {
		select {
		case r, ok := <-updates:
			if !ok {
				return
			}
			if r.Statistics != nil {
				latest = r.Statistics
			}
		case <-ticker.C:
			if latest == nil {
				continue
			}
			writeRow(path, latest)
		}
	}
}

func writeRow(path string, s *simulation.Statistics) {
	logdir, logfile := filepath.Split(path)
	f, err := os.OpenFile(logdir+time.Now().Format(logfile), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		if err := w.Write(header()); err != nil {
			log.Println(err)
		}
	}
	if err := w.Write(row(s)); err != nil {
		log.Println(err)
	}
	w.Flush()
}

func header() []string {
	return []string{"Unix", "EbN0dB", "NumFrames", "BitErrors", "FrameErrors", "BER", "FER", "AvgIterations", "ThroughputMbps"}
}

func row(s *simulation.Statistics) []string {
	return []string{
		fmt.Sprint(time.Now().Unix()),
		fmt.Sprintf("%.3f", s.EbN0dB),
		fmt.Sprint(s.NumFrames),
		fmt.Sprint(s.BitErrors),
		fmt.Sprint(s.FrameErrors),
		fmt.Sprintf("%.6e", s.BER),
		fmt.Sprintf("%.6e", s.FER),
		fmt.Sprintf("%.3f", s.AverageIterations),
		fmt.Sprintf("%.3f", s.ThroughputMbps),
	}
}
