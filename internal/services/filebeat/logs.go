package filebeat

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/pkg/logging"
	pkgstrings "github.com/vlabsio/dynamite-nsm/pkg/strings"
)

// DefaultSampleSize bounds how many recent entries a search scans when no
// explicit sample size is given.
const DefaultSampleSize = 500

// LogSearchManager scans the Filebeat main log for matching entries.
type LogSearchManager struct {
	LogPath         string
	SampleSize      int
	IncludeArchived bool
}

// NewLogSearchManager builds a search manager over the log at logPath.
func NewLogSearchManager(logPath string, sampleSize int, includeArchived bool) *LogSearchManager {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &LogSearchManager{LogPath: logPath, SampleSize: sampleSize, IncludeArchived: includeArchived}
}

// paths returns the log files to scan, oldest first so the rendered
// entries read chronologically.
func (m *LogSearchManager) paths() []string {
	if m.IncludeArchived {
		return []string{m.LogPath + ".1", m.LogPath}
	}
	return []string{m.LogPath}
}

// Search renders the most recent log entries containing pattern. An empty
// pattern matches every entry. A zero limit falls back to the sample size.
func (m *LogSearchManager) Search(pattern string, limit int) (string, error) {
	if limit <= 0 || limit > m.SampleSize {
		limit = m.SampleSize
	}
	var matched []string
	for _, path := range m.paths() {
		lines, err := m.scan(path, pattern)
		if err != nil {
			return "", err
		}
		matched = append(matched, lines...)
	}
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	logging.Debug("Filebeat", "log search matched %d entries for %q", len(matched), pattern)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Entry"})
	for i, line := range matched {
		t.AppendRow(table.Row{i + 1, pkgstrings.TruncateLine(line, pkgstrings.DefaultEntryMaxLen)})
	}
	return t.Render(), nil
}

func (m *LogSearchManager) scan(path, pattern string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if pattern == "" || strings.Contains(line, pattern) {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	return lines, nil
}

// LogSearchSpec is the statically declared manifest turning LogSearchManager
// into a single-responsibility command-line target around its search
// operation.
func LogSearchSpec() cmdline.TargetSpec {
	return cmdline.TargetSpec{
		Name:        "Filebeat Log Search",
		Description: "Search the Filebeat main log",
		Constructor: cmdline.ConstructorSpec{
			Params: []cmdline.ParameterSpec{
				{
					Name:        "log_path",
					Kind:        cmdline.KindString,
					Description: "Path to the Filebeat main log (E.G /var/log/dynamite/filebeat/filebeat.log)",
				},
				{
					Name:        "log_sample_size",
					Kind:        cmdline.KindInt,
					Optional:    true,
					Default:     DefaultSampleSize,
					Description: "The maximum number of recent entries to scan",
				},
				{
					Name:        "include_archived",
					Kind:        cmdline.KindBool,
					Optional:    true,
					Description: "Also scan the rotated log archive",
				},
			},
			Build: func(args cmdline.Values) (any, error) {
				return NewLogSearchManager(args.String("log_path"), args.Int("log_sample_size"), args.Bool("include_archived")), nil
			},
		},
		Operations: []cmdline.OperationSpec{
			{
				Name: "search",
				Doc:  "Render the most recent log entries matching a pattern",
				Params: []cmdline.ParameterSpec{
					{
						Name:        "pattern",
						Kind:        cmdline.KindString,
						Optional:    true,
						Description: "A substring entries must contain; omit to match everything",
					},
					{
						Name:        "limit",
						Kind:        cmdline.KindInt,
						Optional:    true,
						Description: "The maximum number of entries to render",
					},
				},
				Handler: func(target any, args cmdline.Values) (any, error) {
					m := target.(*LogSearchManager)
					return m.Search(args.String("pattern"), args.Int("limit"))
				},
			},
		},
	}
}
