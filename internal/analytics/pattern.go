package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"nuna/internal/model"
)

// パターン抽出の既定値
const (
	DefaultPatternWindow = 30 // 直近何件の日記を見るか
	DefaultMinEntries    = 3  // これ未満はデータ不足
	DefaultMaxPatterns   = 5  // 出力する行数の上限

	minTopicMentions  = 2  // 2件以上の日記に出た話題だけを「繰り返し」とみなす
	coOccurrenceShare = 60 // 話題を含む日記のうちこの割合(%)以上が同じ極性なら報告する
)

// Extractor は日記からパターンを抽出する戦略です。
// HeuristicExtractor と ModelBackedExtractor の2種類がある。
type Extractor interface {
	Extract(ctx context.Context, entries []model.JournalEntry) (*model.PatternAnalysis, error)
	Name() string
}

// ExtractorOptions は抽出戦略に共通の設定
type ExtractorOptions struct {
	Window      int
	MinEntries  int
	MaxPatterns int
}

func (o ExtractorOptions) withDefaults() ExtractorOptions {
	if o.MinEntries <= 0 {
		o.MinEntries = DefaultMinEntries
	}
	if o.Window <= 0 {
		o.Window = DefaultPatternWindow
	}
	if o.Window < o.MinEntries {
		o.Window = o.MinEntries
	}
	if o.MaxPatterns <= 0 {
		o.MaxPatterns = DefaultMaxPatterns
	}
	return o
}

// Topic は日記内で数える話題とそのキーワード (小文字)
type Topic struct {
	Name     string
	Keywords []string
}

// DefaultTopics は固定の話題表
var DefaultTopics = []Topic{
	{Name: "ujian", Keywords: []string{"ujian", "exam", "tes", "test", "kuis", "quiz", "uts", "uas"}},
	{Name: "tidur", Keywords: []string{"tidur", "sleep", "insomnia", "begadang", "ngantuk"}},
	{Name: "teman", Keywords: []string{"teman", "sahabat", "kawan", "friend", "friends"}},
	{Name: "keluarga", Keywords: []string{"keluarga", "family", "ibu", "ayah", "orangtua"}},
	{Name: "tugas dan proyek", Keywords: []string{"tugas", "proyek", "project", "deadline", "assignment"}},
	{Name: "pekerjaan", Keywords: []string{"kerja", "bekerja", "pekerjaan", "kantor", "work", "job", "atasan"}},
	{Name: "kuliah", Keywords: []string{"kuliah", "kampus", "kelas", "dosen", "skripsi", "kelulusan"}},
	{Name: "olahraga", Keywords: []string{"olahraga", "lari", "jogging", "gym", "exercise", "workout"}},
	{Name: "meditasi", Keywords: []string{"meditasi", "meditation", "mindfulness", "napas"}},
	{Name: "stres", Keywords: []string{"stres", "stress", "tekanan", "tertekan", "overthinking", "khawatir"}},
	{Name: "kesehatan", Keywords: []string{"sakit", "sehat", "kesehatan", "pusing", "dokter"}},
	{Name: "keuangan", Keywords: []string{"uang", "keuangan", "money", "gaji", "tagihan"}},
}

// keywordSuffixes はキーワードの後ろに付いても一致とみなす接尾辞 (インドネシア語)
var keywordSuffixes = []string{"nya", "ku", "mu", "lah"}

// HeuristicExtractor は話題キーワードの頻度と気分との共起から
// 決定的にパターンを作ります。同じ入力には常に同じ出力を返す。
type HeuristicExtractor struct {
	opts   ExtractorOptions
	topics []Topic
}

func NewHeuristicExtractor(opts ExtractorOptions) *HeuristicExtractor {
	return &HeuristicExtractor{opts: opts.withDefaults(), topics: DefaultTopics}
}

func (h *HeuristicExtractor) Name() string { return "heuristic" }

func (h *HeuristicExtractor) Extract(_ context.Context, entries []model.JournalEntry) (*model.PatternAnalysis, error) {
	if err := validateJournalEntries(entries); err != nil {
		return nil, err
	}
	recent := RecentJournalEntries(entries, h.opts.Window)
	if len(recent) < h.opts.MinEntries {
		return InsufficientPatterns(len(recent), h.opts.MinEntries), nil
	}

	lines := []string{overallMoodLine(recent)}
	for _, ts := range h.topicStats(recent) {
		if len(lines) >= h.opts.MaxPatterns {
			break
		}
		lines = append(lines, ts.describe())
	}

	return &model.PatternAnalysis{
		Patterns:        FormatPatterns(lines),
		EntriesAnalyzed: len(recent),
	}, nil
}

// topicStat は1つの話題の集計
type topicStat struct {
	topic    Topic
	entries  int
	polarity map[model.Polarity]int
	moods    map[string]int
}

func (h *HeuristicExtractor) topicStats(entries []model.JournalEntry) []*topicStat {
	stats := make([]*topicStat, 0, len(h.topics))
	for _, topic := range h.topics {
		ts := &topicStat{
			topic:    topic,
			polarity: make(map[model.Polarity]int),
			moods:    make(map[string]int),
		}
		for _, e := range entries {
			if !mentionsTopic(tokenize(e.Title+" "+e.Content), topic) {
				continue
			}
			label := journalLabel(e.Mood)
			ts.entries++
			ts.polarity[model.PolarityOf(label)]++
			ts.moods[label]++
		}
		if ts.entries >= minTopicMentions {
			stats = append(stats, ts)
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].entries != stats[j].entries {
			return stats[i].entries > stats[j].entries
		}
		return stats[i].topic.Name < stats[j].topic.Name
	})
	return stats
}

func (ts *topicStat) describe() string {
	dominant, _ := dominantLabel(ts.moods)
	switch {
	case percent(ts.polarity[model.PolarityNegative], ts.entries) >= coOccurrenceShare:
		return fmt.Sprintf("Topik %s muncul di %d catatan dan sering disertai mood negatif (paling sering: %s).",
			ts.topic.Name, ts.entries, dominant)
	case percent(ts.polarity[model.PolarityPositive], ts.entries) >= coOccurrenceShare:
		return fmt.Sprintf("Topik %s muncul di %d catatan dan sering disertai mood positif (paling sering: %s).",
			ts.topic.Name, ts.entries, dominant)
	default:
		return fmt.Sprintf("Topik %s muncul di %d catatan dengan mood yang beragam.", ts.topic.Name, ts.entries)
	}
}

func overallMoodLine(entries []model.JournalEntry) string {
	moods := make(map[string]int)
	for _, e := range entries {
		moods[journalLabel(e.Mood)]++
	}
	label, count := dominantLabel(moods)
	return fmt.Sprintf("Mood yang paling sering muncul adalah %s (%d%% dari %d catatan).",
		label, percent(count, len(entries)), len(entries))
}

// dominantLabel は最多のラベルを返します (同数ならラベル順で先のもの)。
func dominantLabel(counts map[string]int) (string, int) {
	best, bestCount := "", 0
	for label, c := range counts {
		if c > bestCount || (c == bestCount && label < best) {
			best, bestCount = label, c
		}
	}
	return best, bestCount
}

// InsufficientPatterns はデータ不足時の結果。エラーではなく通常の結果として返す。
func InsufficientPatterns(have, need int) *model.PatternAnalysis {
	return &model.PatternAnalysis{
		Patterns: FormatPatterns([]string{
			fmt.Sprintf("Belum cukup catatan jurnal untuk menemukan pola (baru %d dari minimal %d catatan).", have, need),
		}),
		InsufficientData: true,
		EntriesAnalyzed:  have,
	}
}

// RecentJournalEntries は作成日時の新しい順に最大 n 件を返します。
// 同時刻はIDの順。元のスライスは変更しない。
func RecentJournalEntries(entries []model.JournalEntry, n int) []model.JournalEntry {
	sorted := make([]model.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].JournalID.String() < sorted[j].JournalID.String()
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FormatPatterns は観察を "- " 始まりの1行ずつに整形します。
// 行内の改行は空白に置き換え、空の行は捨てる。
func FormatPatterns(observations []string) string {
	lines := make([]string, 0, len(observations))
	for _, o := range observations {
		o = cleanObservation(o)
		if o == "" {
			continue
		}
		lines = append(lines, "- "+o)
	}
	return strings.Join(lines, "\n")
}

func cleanObservation(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimLeft(s, "-*• ")
	return strings.TrimSpace(s)
}

// tokenize は小文字化して文字・数字の連続ごとに分割します。
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// mentionsTopic: トークンがキーワードと完全一致、またはキーワード+接尾辞に一致すれば true
func mentionsTopic(tokens []string, topic Topic) bool {
	for _, tok := range tokens {
		for _, kw := range topic.Keywords {
			if matchKeyword(tok, kw) {
				return true
			}
		}
	}
	return false
}

func matchKeyword(token, keyword string) bool {
	if token == keyword {
		return true
	}
	if !strings.HasPrefix(token, keyword) {
		return false
	}
	rest := token[len(keyword):]
	for _, suffix := range keywordSuffixes {
		if rest == suffix {
			return true
		}
	}
	return false
}

func journalLabel(label string) string {
	normalized, err := model.NormalizeJournalMood(label)
	if err != nil {
		return label
	}
	return normalized
}

func validateJournalEntries(entries []model.JournalEntry) error {
	for i, e := range entries {
		if !model.IsKnownMood(e.Mood) {
			return fmt.Errorf("journal entry %d: unknown mood %q: %w", i, e.Mood, model.ErrInvalidInput)
		}
		if e.CreatedAt.IsZero() {
			return fmt.Errorf("journal entry %d: missing createdAt: %w", i, model.ErrInvalidInput)
		}
	}
	return nil
}
