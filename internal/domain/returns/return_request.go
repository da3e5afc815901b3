package returns

import (
	"fmt"
	"time"

	"github.com/erp/backoffice/internal/domain/shared"
)

// ReturnRequestStatus represents the processing status of a return request
type ReturnRequestStatus int

const (
	ReturnRequestStatusPending          ReturnRequestStatus = 0
	ReturnRequestStatusReceived         ReturnRequestStatus = 10
	ReturnRequestStatusReturnAuthorized ReturnRequestStatus = 20
	ReturnRequestStatusItemsRepaired    ReturnRequestStatus = 30
	ReturnRequestStatusItemsRefunded    ReturnRequestStatus = 40
	ReturnRequestStatusRequestRejected  ReturnRequestStatus = 50
	ReturnRequestStatusCancelled        ReturnRequestStatus = 60
)

// AllReturnRequestStatuses lists every status in enumeration order
var AllReturnRequestStatuses = []ReturnRequestStatus{
	ReturnRequestStatusPending,
	ReturnRequestStatusReceived,
	ReturnRequestStatusReturnAuthorized,
	ReturnRequestStatusItemsRepaired,
	ReturnRequestStatusItemsRefunded,
	ReturnRequestStatusRequestRejected,
	ReturnRequestStatusCancelled,
}

var returnRequestStatusNames = map[ReturnRequestStatus]string{
	ReturnRequestStatusPending:          "Pending",
	ReturnRequestStatusReceived:         "Received",
	ReturnRequestStatusReturnAuthorized: "ReturnAuthorized",
	ReturnRequestStatusItemsRepaired:    "ItemsRepaired",
	ReturnRequestStatusItemsRefunded:    "ItemsRefunded",
	ReturnRequestStatusRequestRejected:  "RequestRejected",
	ReturnRequestStatusCancelled:        "Cancelled",
}

// IsValid checks if the status is a member of the enumeration
func (s ReturnRequestStatus) IsValid() bool {
	_, ok := returnRequestStatusNames[s]
	return ok
}

// String returns the enum member name
func (s ReturnRequestStatus) String() string {
	if name, ok := returnRequestStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ReturnRequestStatus(%d)", int(s))
}

// ResourceKey returns the localization key for the status label
func (s ReturnRequestStatus) ResourceKey() string {
	return "Enums.ReturnRequestStatus." + s.String()
}

// ParseReturnRequestStatus converts a raw status id into a status
func ParseReturnRequestStatus(id int) (ReturnRequestStatus, error) {
	s := ReturnRequestStatus(id)
	if !s.IsValid() {
		return 0, shared.InvalidArgument(fmt.Sprintf("unknown return request status id %d", id))
	}
	return s, nil
}

// ReturnRequest is a customer request to return a quantity of a purchased order item.
// OrderItemID, CustomerID and StoreID are weak references: the referenced
// records may have been deleted and are resolved by batched lookup.
type ReturnRequest struct {
	ID                          int64
	StoreID                     int64
	OrderItemID                 int64
	CustomerID                  int64
	Quantity                    int
	Status                      ReturnRequestStatus
	ReasonForReturn             string
	RequestedAction             string
	RequestedActionUpdatedOnUtc *time.Time
	CustomerComments            string
	StaffNotes                  string
	AdminComment                string
	CreatedOnUtc                time.Time
	UpdatedOnUtc                time.Time
}
