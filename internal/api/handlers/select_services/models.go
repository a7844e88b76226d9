package select_services

// SelectServicesRequest тело запроса выбора услуг
type SelectServicesRequest struct {
	ServiceIDs []int64 `json:"serviceIds"`
}
