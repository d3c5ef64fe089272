// Command export converts persisted session files into a single parquet
// dataset for offline analysis. Each row is one session with its full jump
// history nested as a list.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/wricardo/mcp-training/pegsolitaire/game/session"
)

// JumpRecord is one history entry flattened for the parquet schema.
type JumpRecord struct {
	From     int32 `parquet:"name=from, type=INT32"`
	To       int32 `parquet:"name=to, type=INT32"`
	Jumped   int32 `parquet:"name=jumped, type=INT32"`
	PegsLeft int32 `parquet:"name=pegs_left, type=INT32"`
	Success  bool  `parquet:"name=success, type=BOOLEAN"`
}

// SessionRecord is one persisted session flattened for the parquet schema.
type SessionRecord struct {
	SessionID  string       `parquet:"name=session_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	ConfigName string       `parquet:"name=config_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rows       int32        `parquet:"name=rows, type=INT32"`
	PegsLeft   int32        `parquet:"name=pegs_left, type=INT32"`
	TotalMoves int32        `parquet:"name=total_moves, type=INT32"`
	Victory    bool         `parquet:"name=victory, type=BOOLEAN"`
	GameOver   bool         `parquet:"name=game_over, type=BOOLEAN"`
	CreatedAt  int64        `parquet:"name=created_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	Jumps      []JumpRecord `parquet:"name=jumps, type=LIST"`
}

func main() {
	sessionsDir := flag.String("sessions", "sessions", "directory holding persisted session JSON files")
	outPath := flag.String("out", "sessions.parquet", "output parquet file")
	flag.Parse()

	records, err := collectRecords(*sessionsDir)
	if err != nil {
		fmt.Printf("Error collecting sessions: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Printf("No sessions found in %s\n", *sessionsDir)
		os.Exit(1)
	}

	if err := writeParquet(*outPath, records); err != nil {
		fmt.Printf("Error writing parquet: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d sessions to %s\n", len(records), *outPath)
}

// collectRecords reads every persisted session file in dir and flattens it.
func collectRecords(dir string) ([]SessionRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var records []SessionRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", entry.Name(), err)
			continue
		}

		var persisted session.PersistedSessionData
		if err := json.Unmarshal(data, &persisted); err != nil {
			fmt.Printf("Skipping %s: %v\n", entry.Name(), err)
			continue
		}
		if persisted.GameState == nil {
			fmt.Printf("Skipping %s: no game state\n", entry.Name())
			continue
		}

		records = append(records, flattenSession(&persisted))
	}
	return records, nil
}

func flattenSession(persisted *session.PersistedSessionData) SessionRecord {
	state := persisted.GameState

	jumps := make([]JumpRecord, 0, len(state.MoveHistory))
	for _, entry := range state.MoveHistory {
		jumps = append(jumps, JumpRecord{
			From:     int32(entry.From),
			To:       int32(entry.To),
			Jumped:   int32(entry.Jumped),
			PegsLeft: int32(entry.PegsLeft),
			Success:  entry.Success,
		})
	}

	return SessionRecord{
		SessionID:  persisted.ID,
		ConfigName: persisted.ConfigName,
		Rows:       int32(state.Rows),
		PegsLeft:   int32(state.PegsLeft),
		TotalMoves: int32(state.TotalMoves),
		Victory:    state.Victory,
		GameOver:   state.GameOver,
		CreatedAt:  persisted.CreatedAt.UnixMilli(),
		Jumps:      jumps,
	}
}

func writeParquet(path string, records []SessionRecord) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(SessionRecord), 4)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}
