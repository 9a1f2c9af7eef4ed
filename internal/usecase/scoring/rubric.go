package scoring

import "regexp"

// Rubric ceilings per category. The eight maxima sum to 100.
const (
	MaxSalutation = 5
	MaxContent    = 30
	MaxFlow       = 5
	MaxSpeechRate = 10
	MaxGrammar    = 10
	MaxVocabulary = 10
	MaxClarity    = 15
	MaxEngagement = 15
)

// Salutation tiers, checked in priority order: excellent wins over good,
// good wins over plain.
var (
	salutationExcellent = []string{"excited to introduce", "feeling great", "pleasure to introduce", "greetings"}
	salutationGood      = []string{"good morning", "good afternoon", "good evening", "good day", "hello everyone"}
	salutationNormal    = []string{"hi", "hello"}
)

// Content topic patterns. Name, age and school are deterministic regex
// checks; the rest fall back to semantic similarity when the regex misses.
var (
	reName    = regexp.MustCompile(`(?i)\b(name\s+is|i\s+am|i['’\s]*m|myself|this\s+is)\s+([A-Z])`)
	reAge     = regexp.MustCompile(`(?i)\b(\d+|thirteen|fourteen|fifteen|sixteen)\s*-?\s*(years|yrs)\b`)
	reSchool  = regexp.MustCompile(`(?i)\b(class|grade|standard|school|college|university|study|student)\b`)
	reFamily  = regexp.MustCompile(`(?i)\b(family|parents|mother|father|siblings)\b`)
	reHobbies = regexp.MustCompile(`(?i)\b(hobby|hobbies|enjoy|like\s+(to|playing|reading)|pastime)\b`)

	reAmbition = regexp.MustCompile(`(?i)\b(goal|ambition|dream|want\s+to\s+be)\b`)
	reStrength = regexp.MustCompile(`(?i)\b(strength|good\s+at|confident)\b`)
	reUnique   = regexp.MustCompile(`(?i)\b(unique|special|fun\s+fact)\b`)
	reOrigin   = regexp.MustCompile(`(?i)\b(i\s+am\s+from|i['’]m\s+from|originally\s+from|live\s+in|living\s+in|born\s+in|hometown|native)\b`)
	reAchieve  = regexp.MustCompile(`(?i)\b(won|achievement|award)\b`)
)

// contentTopic is one rubric topic with its award and detection strategy
type contentTopic struct {
	name     string
	points   int
	pattern  *regexp.Regexp
	anchors  []string
	semantic bool
}

var mustHaveTopics = []contentTopic{
	{name: "Name", points: 4, pattern: reName},
	{name: "Age", points: 4, pattern: reAge},
	{name: "School", points: 4, pattern: reSchool},
	{name: "Family", points: 4, pattern: reFamily, anchors: []string{"My family", "I live with"}, semantic: true},
	{name: "Hobbies", points: 4, pattern: reHobbies, anchors: []string{"My hobby is", "I enjoy"}, semantic: true},
}

var bonusTopics = []contentTopic{
	{name: "Ambition", points: 2, pattern: reAmbition, anchors: []string{"I want to become"}, semantic: true},
	{name: "Strength", points: 2, pattern: reStrength, anchors: []string{"My strength is"}, semantic: true},
	{name: "Unique", points: 2, pattern: reUnique, anchors: []string{"fun fact"}, semantic: true},
	{name: "Origin", points: 2, pattern: reOrigin},
	{name: "Achievements", points: 2, pattern: reAchieve, anchors: []string{"I won"}, semantic: true},
}

// Similarity threshold for the content topics' semantic fallback
const topicSimilarityThreshold = 0.35

// Flow anchors and thresholds per semantic role
var (
	anchorsSalutation = []string{"Hello everyone", "Good morning", "Hi", "Greetings"}
	anchorsIntro      = []string{"My name is", "I am", "I'm", "I’m", "Myself", "This is"}
	anchorsClosing    = []string{"Thank you", "Thanks", "That is all", "The end"}
	anchorsBody       = []string{"family", "mother", "school", "class", "hobby", "playing", "dream", "goal"}
)

const (
	flowSalutationThreshold = 0.25
	flowIntroThreshold      = 0.25
	flowClosingThreshold    = 0.30
	flowBodyThreshold       = 0.25
)

// Filler words counted by the clarity scorer. Token matching is exact, so
// multi-word entries only ever match if the tokenizer emits them as one unit.
var fillerWords = map[string]struct{}{
	"um": {}, "uh": {}, "like": {}, "you know": {}, "actually": {},
	"basically": {}, "right": {}, "i mean": {}, "well": {}, "kinda": {},
	"sort of": {}, "hmm": {},
}

// Stylistic issues excluded from grammar scoring. Matched as lowercase
// substrings of the rule id or message.
var grammarIgnoreKeywords = []string{
	"hyphen", "compound", "joined", "whitespace", "comma", "punctuation",
	"spelling", "typo", "morfologik", "uppercase", "capitalization",
	"repetition", "consecutive", "successive", "same word",
	"style", "wordiness", "sentence start", "rewording", "thesaurus",
}

// High-energy vocabulary required before the engagement scorer will grant
// its top band on lexicon sentiment alone.
var enthusiasmKeywords = []string{
	"excited", "thrilled", "passionate", "delighted", "honor",
	"love", "amazing", "wonderful", "fantastic", "energetic",
	"grateful", "confident", "pleasure",
}

// Cap applied when sentiment is top-band but no enthusiasm vocabulary backs
// it up. Hand-tuned; preserved as-is.
const engagementCapWithoutEnthusiasm = 0.88
