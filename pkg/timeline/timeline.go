package timeline

import "time"

// Source tags the origin of a timeline item.
type Source string

const (
	SourceEvent   Source = "event"
	SourceTask    Source = "task"
	SourcePayment Source = "payment"
)

// Filter restricts the timeline to one source type.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterEvents  Filter = "events"
	FilterTasks   Filter = "tasks"
	FilterVendors Filter = "vendors"
)

// Item statuses for tasks; event statuses come from the sub-event evaluation
// and payment statuses from the installment itself.
const (
	TaskStatusCompleted = "completed"
	TaskStatusOverdue   = "overdue"
	TaskStatusPending   = "pending"
)

// EventEntry is a sub-event as seen by the aggregator. Status is supplied by
// the caller from the sub-event evaluation; the aggregator does not compute it.
type EventEntry struct {
	Id        int
	Title     string
	VenueName string
	Date      time.Time
	Status    string
}

type TaskEntry struct {
	Id       int
	Title    string
	DueDate  time.Time
	Done     bool
	Priority string
	Category string
}

// PaymentEntry is a vendor installment. A nil DueDate means no installment is
// scheduled yet; such entries never appear on the timeline.
type PaymentEntry struct {
	Id             int
	VendorName     string
	VendorCategory string
	Amount         int64
	DueDate        *time.Time
	Status         string
}

// Item is a display-ready projection of one source record. It is rebuilt on
// every aggregation pass and never stored.
type Item struct {
	// Id is a composite of the source tag and the original record id,
	// e.g. "task-12", unique across the merged view.
	Id       string
	Source   Source
	Date     time.Time
	Title    string
	Subtitle string
	Status   string
	// ColorKey is the presentation hint derived from Status. Overdue unpaid
	// installments get the overdue key while keeping their stored status.
	ColorKey string
}

// DayGroup holds all items of one calendar day. Date is midnight in the
// caller's timezone.
type DayGroup struct {
	Date  time.Time
	Items []Item
}

// View is the aggregated timeline. Upcoming days (today and later) are in
// ascending order; Past days are most recent first and bounded to the 5 most
// recent days.
type View struct {
	Upcoming []DayGroup
	Past     []DayGroup
}

type Options struct {
	Filter        Filter
	ShowCompleted bool
}

// colorKeys maps an item status to its presentation key. Styling itself
// lives in the frontend; the backend only names the bucket.
var colorKeys = map[string]string{
	"ready":             "green",
	"attention":         "amber",
	"conflict":          "red",
	TaskStatusCompleted: "green",
	TaskStatusOverdue:   "red",
	TaskStatusPending:   "blue",
	"paid":              "green",
	"confirmed":         "blue",
}

func colorKey(status string) string {
	if key, ok := colorKeys[status]; ok {
		return key
	}
	return "gray"
}
