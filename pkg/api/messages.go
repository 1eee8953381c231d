package api

// Record is a contributor or cost event row.
type Record struct {
	Id     string `json:"id"`
	Seq    int    `json:"seq"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	// State is "draft" or "finalized".
	State string `json:"state"`
}

// Form is the full set of rows owned by the caller.
type Form struct {
	Contributors []*Record `json:"contributors"`
	CostEvents   []*Record `json:"cost_events"`
}

// Balance is one contributor's position in a report.
type Balance struct {
	Name       string  `json:"name"`
	AmountPaid float64 `json:"amount_paid"`
	Balance    float64 `json:"balance"`
	// Classification is "creditor", "debtor" or "settled".
	Classification string `json:"classification"`
	// Reported is the two-decimal amount shown to the user.
	Reported string `json:"reported"`
	Line     string `json:"line"`
}

// ReportDisplay holds the report totals rendered with two decimals.
type ReportDisplay struct {
	TotalGiven    string `json:"total_given"`
	TotalBill     string `json:"total_bill"`
	UnspentAmount string `json:"unspent_amount"`
	PeopleCount   string `json:"people_count"`
	EqualShare    string `json:"equal_share"`
}

// Report is a settlement report. Numeric fields are unrounded; Display and
// the balance lines are rounded for presentation.
type Report struct {
	Currency      string        `json:"currency"`
	TotalGiven    float64       `json:"total_given"`
	TotalBill     float64       `json:"total_bill"`
	UnspentAmount float64       `json:"unspent_amount"`
	PeopleCount   int           `json:"people_count"`
	EqualShare    float64       `json:"equal_share"`
	Balances      []*Balance    `json:"balances"`
	Display       ReportDisplay `json:"display"`
}

type GetFormRequest struct{}

// FormResponse is returned by every form procedure. Report is set when the
// form was recalculated as part of the call.
type FormResponse struct {
	Form     *Form   `json:"form"`
	Report   *Report `json:"report,omitempty"`
	RecordId string  `json:"record_id,omitempty"`
}

type AddRecordRequest struct {
	// Kind is "contributor" (or "person") or "cost_event" (or "event").
	Kind string `json:"kind"`
}

// UpdateRecordRequest edits a draft record. Nil fields are left unchanged.
type UpdateRecordRequest struct {
	Id     string  `json:"id"`
	Name   *string `json:"name,omitempty"`
	Amount *string `json:"amount,omitempty"`
}

type ToggleRecordRequest struct {
	Id string `json:"id"`
}

type RemoveRecordRequest struct {
	Id string `json:"id"`
}

type CalculateRequest struct{}

type CalculateResponse struct {
	Report *Report `json:"report"`
}

type ResetFormRequest struct{}

// User is the public view of an account.
type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the account and a bearer token for it.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}
