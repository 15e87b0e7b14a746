package agent

import "strings"

// KindSpec describes one recognized action kind: the required fields the
// runtime validator enforces and the value documentation injected into
// the prompt. Keeping both in one place keeps the prompt and the
// validator from drifting apart.
type KindSpec struct {
	Kind       string
	Display    string // used in failure results ("Data Missing in {Display}")
	Label      string // confirmation notification label and action URL
	Required   []string
	AnyOf      []string // at least one must be present when non-empty
	NeedsMedia bool
	ValuesDoc  string
}

// kindOrder fixes the order kinds appear in the prompt.
var kindOrder = []string{
	"growth",
	"feeding",
	"sleep",
	"vaccination",
	"doctor_contact",
	"essentials",
	"memory",
	"notification",
}

var kinds = map[string]*KindSpec{
	"growth": {
		Kind:     "growth",
		Display:  "Growth",
		Label:    "Growth",
		Required: []string{"date"},
		AnyOf:    []string{"height", "weight", "head"},
		ValuesDoc: `for growth the values will be:
{"date": today's date, format is YYYY-MM-DD,
"height": float height in cm,
"weight": float weight in kg,
"head": float in cm}`,
	},
	"feeding": {
		Kind:     "feeding",
		Display:  "Feeding",
		Label:    "Feeding",
		Required: []string{"time", "type", "amount"},
		ValuesDoc: `for feeding the values will be:
//time, type, amount can not be null
{
"time": //current time like '08:31 PM'
"type": //'Breastfeeding', 'Bottle', 'Solid Food' (not other than this),
"amount": //amount according to type,
"notes": //the note according to the reply
}`,
	},
	"sleep": {
		Kind:     "sleep",
		Display:  "Sleep",
		Label:    "Sleep",
		Required: []string{"babyName", "time", "type", "duration", "date"},
		ValuesDoc: `for sleep the values will be:
//time, babyName, type, duration, mood, date can not be null
{
"time": //the respective time,
"babyName": //if given else "Your Baby",
"type": //"nap", "night" (not other than this),
"duration": //(string) amount according to type,
"mood": //mood if given else happy,
"notes": //the note according to the reply,
"date": //date relative to today's date, format is YYYY-MM-DD
}`,
	},
	"vaccination": {
		Kind:     "vaccination",
		Display:  "Vaccination",
		Label:    "Medical",
		Required: []string{"name", "scheduledDate"},
		ValuesDoc: `for vaccination the values will be:
//name, scheduledDate, completeDate, status, description can not be null
{
"name": //name of vaccine if given else unknown,
"scheduledDate": //date of vaccination, format is YYYY-MM-DD,
"completeDate": //format is YYYY-MM-DD,
"notes": //the note according to the reply,
"status": //"scheduled", "completed", "overdue" (nothing other than this),
"description": //more detailed description
}`,
	},
	"doctor_contact": {
		Kind:     "doctor_contact",
		Display:  "Contact",
		Label:    "Medical",
		Required: []string{"name", "category", "type", "value"},
		ValuesDoc: `for doctor_contact the values will be:
{
"name": //name of doctor if given else unknown,
"category": //"scheduled", "completed", can not be null, default is scheduled,
"type": //"phone", "website",
"value": //a valid phone number or weblink,
"description": //the note according to the reply
}`,
	},
	"essentials": {
		Kind:     "essentials",
		Display:  "Essentials",
		Label:    "Essentials",
		Required: []string{"name", "currentStock", "minThreshold"},
		ValuesDoc: `for essentials the values will be:
//name, category, currentStock, minThreshold can not be null or empty
{
"name": //name of item if given else unknown,
"category": //"diapering","feeding","clothing","health","playtime","bathing","sleeping","travel","traditional","cleaning","others" (not other than this),
"currentStock": //a number,
"minThreshold": //number to set alert for demand, default is 5,
"unit": //"pieces", "bottles", "packs", "boxes", "oz", "lbs",
"notes": //the note according to the reply
}`,
	},
	"memory": {
		Kind:       "memory",
		Display:    "Memory",
		Label:      "Memories",
		Required:   []string{"title", "description"},
		NeedsMedia: true,
		ValuesDoc: `for memory the values will be:
//title, description, type can not be null
{
"title": //title of memory if given else a sentence including date and the memory,
"type": //image, video (not other than this),
"description": //the description of memory as first person,
"tags": //generate tags from memory,
"isPublic": //true or false according to reply
}`,
	},
	"notification": {
		Kind:     "notification",
		Display:  "Notification",
		Label:    "Notifications",
		Required: []string{"title", "type", "message", "scheduledFor"},
		ValuesDoc: `for notification the values will be:
//type, title, message, priority, scheduledFor, actionUrl, category can not be null
{
"type": //"feeding_reminder","sleep_reminder","vaccine_reminder","appointment_reminder","milestone_celebration","weather_alert","essentials_alert","general",
"title": //according to reply,
"message": //the description message,
"priority": //"low", "medium", "high", "urgent" (not other than this),
"scheduledFor": //date, format is YYYY-MM-DD,
"isRead": //false always,
"isSent": //false always,
"actionUrl": //"Essentials","Feeding","Growth","Medical","Memories","Sleep","Notifications" (nothing other than this),
"category": //"reminder", "alert", "celebration", "info" (nothing other than this)
}`,
	},
}

// LookupKind resolves an action name to its spec, case-insensitively.
// Returns nil for unknown kinds.
func LookupKind(name string) *KindSpec {
	return kinds[strings.ToLower(strings.TrimSpace(name))]
}

// Kinds returns all recognized kind names in prompt order.
func Kinds() []string {
	return kindOrder
}

// MissingFields reports which required fields are absent or empty.
// A second return signals the at-least-one-of group was not satisfied.
func (k *KindSpec) MissingFields(values map[string]any) ([]string, bool) {
	missing := []string{}
	for _, field := range k.Required {
		if !present(values[field]) {
			missing = append(missing, field)
		}
	}

	anyOfSatisfied := len(k.AnyOf) == 0
	for _, field := range k.AnyOf {
		if present(values[field]) {
			anyOfSatisfied = true
			break
		}
	}

	return missing, !anyOfSatisfied
}

// Validate reports whether the values satisfy the kind's required fields.
func (k *KindSpec) Validate(values map[string]any) bool {
	missing, anyOfMissing := k.MissingFields(values)
	return len(missing) == 0 && !anyOfMissing
}

// present treats nil, empty strings, zero numbers and false as absent,
// matching how the model leaves fields it could not extract.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}
