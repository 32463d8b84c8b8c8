package dto

import "estatehub/internal/estate/domain/entities"

// CustomerRequest представляет запрос на создание или изменение профиля клиента.
type CustomerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	UserID      string `json:"userId"`
}

// ToEntity переводит запрос в доменную модель клиента.
func (r *CustomerRequest) ToEntity() *entities.Customer {
	return &entities.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		UserID:      r.UserID,
	}
}

// CustomerResponse представляет профиль клиента.
type CustomerResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	UserID      string `json:"userId"`
}

// NewCustomerResponse создает ответ из доменной модели.
func NewCustomerResponse(c *entities.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber,
		UserID:      c.UserID,
	}
}

// NewCustomerResponseList создает список ответов из доменных моделей.
func NewCustomerResponseList(customers []*entities.Customer) []*CustomerResponse {
	responses := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, NewCustomerResponse(c))
	}
	return responses
}

// BusinessRequest представляет запрос на создание или изменение профиля компании.
type BusinessRequest struct {
	BusinessName string `json:"businessName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	UserID       string `json:"userId"`
}

// ToEntity переводит запрос в доменную модель компании.
func (r *BusinessRequest) ToEntity() *entities.Business {
	return &entities.Business{
		BusinessName: r.BusinessName,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Address:      r.Address,
		PhoneNumber:  r.PhoneNumber,
		UserID:       r.UserID,
	}
}

// BusinessResponse представляет профиль компании.
type BusinessResponse struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	UserID       string `json:"userId"`
}

// NewBusinessResponse создает ответ из доменной модели.
func NewBusinessResponse(b *entities.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:           b.ID,
		BusinessName: b.BusinessName,
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Address:      b.Address,
		PhoneNumber:  b.PhoneNumber,
		UserID:       b.UserID,
	}
}

// NewBusinessResponseList создает список ответов из доменных моделей.
func NewBusinessResponseList(businesses []*entities.Business) []*BusinessResponse {
	responses := make([]*BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		responses = append(responses, NewBusinessResponse(b))
	}
	return responses
}
