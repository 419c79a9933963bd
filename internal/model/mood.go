// internal/model/mood.go
package model

import (
	"fmt"
	"strings"
)

// Mood は正規化された気分ラベル (ダッシュボードの5段階スケール) です。
type Mood string

const (
	MoodHebat       Mood = "Hebat"
	MoodBaik        Mood = "Baik"
	MoodOke         Mood = "Oke"
	MoodBuruk       Mood = "Buruk"
	MoodSangatBuruk Mood = "Sangat Buruk"
)

// CanonicalMoods は正規スケールの全ラベル (良い順)
var CanonicalMoods = []Mood{MoodHebat, MoodBaik, MoodOke, MoodBuruk, MoodSangatBuruk}

// 日記用の7段階スケール
const (
	JournalMoodSenang    = "Senang"
	JournalMoodTenang    = "Tenang"
	JournalMoodProduktif = "Produktif"
	JournalMoodNetral    = "Netral"
	JournalMoodCemas     = "Cemas"
	JournalMoodStres     = "Stres"
	JournalMoodSedih     = "Sedih"
)

// JournalMoods は日記画面で選択できるラベル
var JournalMoods = []string{
	JournalMoodSenang,
	JournalMoodTenang,
	JournalMoodProduktif,
	JournalMoodNetral,
	JournalMoodCemas,
	JournalMoodStres,
	JournalMoodSedih,
}

// Polarity は進捗計算で使う気分の分類です。
type Polarity int

const (
	PolarityNegative Polarity = iota - 1 // -1
	PolarityNeutral                      // 0
	PolarityPositive                     // 1
)

func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "positive"
	case PolarityNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// moodPolarity は正規ラベルごとの分類表。
// 日記ラベルは canonicalByLabel 経由でここに到達する。
var moodPolarity = map[Mood]Polarity{
	MoodHebat:       PolarityPositive,
	MoodBaik:        PolarityPositive,
	MoodOke:         PolarityNeutral,
	MoodBuruk:       PolarityNegative,
	MoodSangatBuruk: PolarityNegative,
}

// moodLabel は受け付けるラベル1件分の定義
type moodLabel struct {
	display   string // 保存・表示に使う綴り
	canonical Mood
}

// canonicalByLabel は小文字化したラベル -> 定義 のマッピング表。
// 2つの語彙と英語の別名をすべてここで正規スケールへ寄せる。
var canonicalByLabel = map[string]moodLabel{
	// ダッシュボード (5段階)
	"hebat":        {string(MoodHebat), MoodHebat},
	"baik":         {string(MoodBaik), MoodBaik},
	"oke":          {string(MoodOke), MoodOke},
	"buruk":        {string(MoodBuruk), MoodBuruk},
	"sangat buruk": {string(MoodSangatBuruk), MoodSangatBuruk},
	"sangatburuk":  {string(MoodSangatBuruk), MoodSangatBuruk},
	"sangat_buruk": {string(MoodSangatBuruk), MoodSangatBuruk},

	// 日記 (7段階)
	"senang":    {JournalMoodSenang, MoodHebat},
	"tenang":    {JournalMoodTenang, MoodBaik},
	"produktif": {JournalMoodProduktif, MoodBaik},
	"netral":    {JournalMoodNetral, MoodOke},
	"cemas":     {JournalMoodCemas, MoodBuruk},
	"stres":     {JournalMoodStres, MoodBuruk},
	"sedih":     {JournalMoodSedih, MoodSangatBuruk},

	// 別名
	"happy":    {JournalMoodSenang, MoodHebat},
	"relaxed":  {JournalMoodTenang, MoodBaik},
	"damai":    {JournalMoodTenang, MoodBaik},
	"neutral":  {JournalMoodNetral, MoodOke},
	"okay":     {JournalMoodNetral, MoodOke},
	"anxious":  {JournalMoodCemas, MoodBuruk},
	"stressed": {JournalMoodStres, MoodBuruk},
	"sad":      {JournalMoodSedih, MoodSangatBuruk},
}

func lookupLabel(label string) (moodLabel, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(label), " "))
	def, ok := canonicalByLabel[key]
	return def, ok
}

// ParseMood はどちらの語彙のラベルでも受け取り、正規スケールの Mood を返します。
func ParseMood(label string) (Mood, error) {
	def, ok := lookupLabel(label)
	if !ok {
		return "", fmt.Errorf("unknown mood label %q: %w", label, ErrInvalidInput)
	}
	return def.canonical, nil
}

// NormalizeJournalMood は日記に保存する綴りを返します (例: "anxious" -> "Cemas")。
// ダッシュボードのラベルはそのままの綴りで保存される。
func NormalizeJournalMood(label string) (string, error) {
	def, ok := lookupLabel(label)
	if !ok {
		return "", fmt.Errorf("unknown mood label %q: %w", label, ErrInvalidInput)
	}
	return def.display, nil
}

// IsKnownMood はバリデーション用
func IsKnownMood(label string) bool {
	_, ok := lookupLabel(label)
	return ok
}

// Valid は m が正規スケールのラベルかどうかを返します。
func (m Mood) Valid() bool {
	_, ok := moodPolarity[m]
	return ok
}

// Polarity は m の分類を返します。未知のラベルは中立扱い。
func (m Mood) Polarity() Polarity {
	return moodPolarity[m]
}

func (m Mood) IsPositive() bool {
	return m.Polarity() == PolarityPositive
}

// PolarityOf は任意のラベル (日記ラベル含む) の分類を返します。
func PolarityOf(label string) Polarity {
	mood, err := ParseMood(label)
	if err != nil {
		return PolarityNeutral
	}
	return mood.Polarity()
}
