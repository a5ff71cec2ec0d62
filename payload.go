package cwsummary

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Payload is the decoded content of a block. The concrete type is selected
// by the block type; see DecodePayload.
type Payload interface {
	BlockType() BlockType
}

// Fragmenter is implemented by payloads whose text can be produced without
// consulting any external service.
type Fragmenter interface {
	Fragment() string
}

// TextPayload is the payload of a text block. Text is HTML.
type TextPayload struct {
	Text string
}

func (TextPayload) BlockType() BlockType { return BlockTypeText }

// Fragment returns the block text.
func (p TextPayload) Fragment() string { return p.Text }

// CodePayload is the payload of a code block.
type CodePayload struct {
	Lang    string
	Content string

	// HasContent reports whether the payload carried a content field at all.
	HasContent bool
}

func (CodePayload) BlockType() BlockType { return BlockTypeCode }

// Fragment returns the code prefixed with its language label, or an empty
// string when the block has no content field.
func (p CodePayload) Fragment() string {
	if !p.HasContent {
		return ""
	}
	return p.Lang + " code:\n" + p.Content
}

// HeadlinePayload is the payload of a headline block.
type HeadlinePayload struct {
	Title    string
	Subtitle string
}

func (HeadlinePayload) BlockType() BlockType { return BlockTypeHeadline }

// Fragment returns the title and subtitle on separate lines.
func (p HeadlinePayload) Fragment() string { return p.Title + "\n" + p.Subtitle }

// KeyPointPayload is the payload of a key-point block.
type KeyPointPayload struct {
	Text string
}

func (KeyPointPayload) BlockType() BlockType { return BlockTypeKeyPoint }

// Fragment returns the key point text.
func (p KeyPointPayload) Fragment() string { return p.Text }

// DialogCard is a single flash card with a question side and an answer side.
type DialogCard struct {
	FrontText string
	BackText  string
}

// DialogCardsPayload is the payload of a dialog-cards block.
type DialogCardsPayload struct {
	Cards []DialogCard
}

func (DialogCardsPayload) BlockType() BlockType { return BlockTypeDialogCards }

// Fragment returns front and back text of every card. Cards are joined
// without a separator.
func (p DialogCardsPayload) Fragment() string {
	var b strings.Builder
	for _, c := range p.Cards {
		b.WriteString(c.FrontText)
		b.WriteString("\n")
		b.WriteString(c.BackText)
	}
	return b.String()
}

// TypewriterPayload is the payload of a typewriter block.
type TypewriterPayload struct {
	Text string
}

func (TypewriterPayload) BlockType() BlockType { return BlockTypeTypewriter }

// Fragment returns the typewriter text.
func (p TypewriterPayload) Fragment() string { return p.Text }

// DocumentTypePDF is the doc_type of document blocks holding a PDF.
const DocumentTypePDF = "pdf"

// DocumentPayload is the payload of a document block. Its text lives in a
// stored file, so it does not implement Fragmenter.
type DocumentPayload struct {
	DocType string
	FileID  string
}

func (DocumentPayload) BlockType() BlockType { return BlockTypeDocument }

// IsPDF reports whether the payload references a PDF file.
func (p DocumentPayload) IsPDF() bool {
	return p.DocType == DocumentTypePDF && p.FileID != "" && p.FileID != "0"
}

// DecodePayload decodes a raw block payload into the variant matching typ.
// It never fails: malformed JSON decodes as an empty mapping and absent
// fields are empty strings. Unknown block types return nil.
func DecodePayload(typ BlockType, raw json.RawMessage) Payload {
	f := decodeFields(raw)

	switch typ {
	case BlockTypeText:
		return TextPayload{Text: f.str("text")}
	case BlockTypeCode:
		content, ok := f.lookup("content")
		return CodePayload{Lang: f.str("lang"), Content: content, HasContent: ok}
	case BlockTypeHeadline:
		return HeadlinePayload{Title: f.str("title"), Subtitle: f.str("subtitle")}
	case BlockTypeKeyPoint:
		return KeyPointPayload{Text: f.str("text")}
	case BlockTypeDialogCards:
		return DialogCardsPayload{Cards: f.cards("cards")}
	case BlockTypeTypewriter:
		return TypewriterPayload{Text: f.str("text")}
	case BlockTypeDocument:
		return DocumentPayload{DocType: f.str("doc_type"), FileID: f.str("file_id")}
	default:
		return nil
	}
}

// fields is an untyped payload mapping.
type fields map[string]any

func decodeFields(raw json.RawMessage) fields {
	if len(raw) == 0 {
		return nil
	}

	// Some hosts store the payload as a JSON string holding the object.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(s)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func (f fields) str(key string) string {
	s, _ := f.lookup(key)
	return s
}

// lookup returns the value of key rendered as text. Scalars are formatted;
// null, objects and arrays count as absent.
func (f fields) lookup(key string) (string, bool) {
	return scalar(f[key])
}

func (f fields) cards(key string) []DialogCard {
	list, ok := f[key].([]any)
	if !ok {
		return nil
	}

	cards := make([]DialogCard, 0, len(list))
	for _, v := range list {
		card, _ := v.(map[string]any)
		c := fields(card)
		cards = append(cards, DialogCard{
			FrontText: c.str("front_text"),
			BackText:  c.str("back_text"),
		})
	}
	return cards
}

func scalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
