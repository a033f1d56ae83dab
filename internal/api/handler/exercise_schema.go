package handler

// addExerciseRequest accepts both JSON and form-encoded bodies. Date is left
// as a raw string; the service owns calendar-date parsing so that `date`,
// `from` and `to` share one validation path.
type addExerciseRequest struct {
	Description string `json:"description" form:"description" validate:"required"`
	Duration    int    `json:"duration"    form:"duration"    validate:"required,gt=0"`
	Date        string `json:"date"        form:"date"`
}

type exerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"_id"`
	Log      []logEntryResponse `json:"log"`
}
