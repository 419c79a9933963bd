package analytics

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"nuna/internal/model"
)

const patternSystemPrompt = `Kamu adalah asisten kesehatan mental yang membaca ringkasan jurnal pengguna.
Temukan pola yang berulang antara topik yang ditulis dan mood yang dicatat.
Tulis setiap pola dalam satu baris singkat berbahasa Indonesia, tanpa penomoran.
Jangan memberi diagnosis medis. Maksimal %d baris.`

// journalSnippetLen は1件あたりモデルに渡す本文の最大文字数
const journalSnippetLen = 280

// ErrEmptyModelReply はモデルが観察を1件も返さなかった場合
var ErrEmptyModelReply = errors.New("model returned no observations")

// ModelBackedExtractor は言語モデルにパターン抽出を任せる戦略です。
// 返答は HeuristicExtractor と同じ行形式に正規化される。
type ModelBackedExtractor struct {
	llm  llms.Model
	opts ExtractorOptions
}

func NewModelBackedExtractor(llm llms.Model, opts ExtractorOptions) *ModelBackedExtractor {
	return &ModelBackedExtractor{llm: llm, opts: opts.withDefaults()}
}

func (m *ModelBackedExtractor) Name() string { return "model" }

func (m *ModelBackedExtractor) Extract(ctx context.Context, entries []model.JournalEntry) (*model.PatternAnalysis, error) {
	if err := validateJournalEntries(entries); err != nil {
		return nil, err
	}
	recent := RecentJournalEntries(entries, m.opts.Window)
	if len(recent) < m.opts.MinEntries {
		return InsufficientPatterns(len(recent), m.opts.MinEntries), nil
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, fmt.Sprintf(patternSystemPrompt, m.opts.MaxPatterns)),
		llms.TextParts(llms.ChatMessageTypeHuman, renderJournalDigest(recent)),
	}
	resp, err := m.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(512),
	)
	if err != nil {
		return nil, fmt.Errorf("ModelBackedExtractor.Extract: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("ModelBackedExtractor.Extract: %w", ErrEmptyModelReply)
	}

	observations := NormalizeModelReply(resp.Choices[0].Content, m.opts.MaxPatterns)
	if len(observations) == 0 {
		return nil, fmt.Errorf("ModelBackedExtractor.Extract: %w", ErrEmptyModelReply)
	}
	return &model.PatternAnalysis{
		Patterns:        FormatPatterns(observations),
		EntriesAnalyzed: len(recent),
	}, nil
}

// renderJournalDigest は日記を1件1行のコンパクトな形にします。
func renderJournalDigest(entries []model.JournalEntry) string {
	var b strings.Builder
	for _, e := range entries {
		content := strings.Join(strings.Fields(e.Content), " ")
		if r := []rune(content); len(r) > journalSnippetLen {
			content = string(r[:journalSnippetLen]) + "..."
		}
		fmt.Fprintf(&b, "%s | mood: %s | %s: %s\n",
			e.CreatedAt.Format("2006-01-02"), journalLabel(e.Mood), strings.TrimSpace(e.Title), content)
	}
	return b.String()
}

// 先頭の箇条書き記号や番号 ("- ", "* ", "1. ", "2) ")
var listMarker = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)

// NormalizeModelReply はモデルの返答を観察のリストにします。
// 記号や番号を外し、空行を捨て、最大 limit 件に切り詰める。
func NormalizeModelReply(reply string, limit int) []string {
	var observations []string
	for _, line := range strings.Split(reply, "\n") {
		line = listMarker.ReplaceAllString(line, "")
		line = strings.Trim(strings.TrimSpace(line), "*")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		observations = append(observations, line)
		if limit > 0 && len(observations) >= limit {
			break
		}
	}
	return observations
}

// NewOpenAIModel は OpenAI 互換 API のクライアントを作ります。
// baseURL が空なら公式エンドポイント。
func NewOpenAIModel(apiKey, baseURL, modelName string) (llms.Model, error) {
	opts := []openai.Option{openai.WithToken(apiKey)}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if modelName != "" {
		opts = append(opts, openai.WithModel(modelName))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return llm, nil
}
