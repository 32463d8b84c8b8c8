package dto

import (
	"time"

	"estatehub/internal/estate/domain/entities"
)

// PropertyRequest представляет данные объявления из части "property"
// multipart-запроса.
type PropertyRequest struct {
	PropertyType   string  `json:"propertyType"`
	Area           float64 `json:"area"`
	NumberOfRooms  string  `json:"numberOfRooms"`
	Floor          int     `json:"floor"`
	HeatingType    string  `json:"heatingType"`
	Address        string  `json:"address"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	PropertyStatus string  `json:"propertyStatus"`
}

// ToEntity переводит запрос в доменную модель объявления.
func (r *PropertyRequest) ToEntity() *entities.Property {
	return &entities.Property{
		PropertyType:  entities.PropertyType(r.PropertyType),
		Area:          r.Area,
		NumberOfRooms: r.NumberOfRooms,
		Floor:         r.Floor,
		HeatingType:   entities.HeatingType(r.HeatingType),
		Address:       r.Address,
		Description:   r.Description,
		Price:         r.Price,
		Status:        entities.PropertyStatus(r.PropertyStatus),
	}
}

// PropertyResponse представляет полное объявление.
type PropertyResponse struct {
	ID             string    `json:"id"`
	PropertyType   string    `json:"propertyType"`
	Area           float64   `json:"area"`
	NumberOfRooms  string    `json:"numberOfRooms"`
	Floor          int       `json:"floor"`
	HeatingType    string    `json:"heatingType"`
	Address        string    `json:"address"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	PropertyStatus string    `json:"propertyStatus"`
	ImageURLs      []string  `json:"imageUrls"`
	OwnerID        string    `json:"ownerId"`
	ListerID       string    `json:"listerId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewPropertyResponse создает ответ из доменной модели.
func NewPropertyResponse(p *entities.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:             p.ID,
		PropertyType:   string(p.PropertyType),
		Area:           p.Area,
		NumberOfRooms:  p.NumberOfRooms,
		Floor:          p.Floor,
		HeatingType:    string(p.HeatingType),
		Address:        p.Address,
		Description:    p.Description,
		Price:          p.Price,
		PropertyStatus: string(p.Status),
		ImageURLs:      p.ImageURLs,
		OwnerID:        p.OwnerID,
		ListerID:       p.ListerID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewPropertyResponseList создает список ответов из доменных моделей.
func NewPropertyResponseList(properties []*entities.Property) []*PropertyResponse {
	responses := make([]*PropertyResponse, 0, len(properties))
	for _, p := range properties {
		responses = append(responses, NewPropertyResponse(p))
	}
	return responses
}

// PropertySummaryResponse представляет объявление в публичной выдаче.
type PropertySummaryResponse struct {
	ID             string   `json:"id"`
	PropertyType   string   `json:"propertyType"`
	Area           float64  `json:"area"`
	NumberOfRooms  string   `json:"numberOfRooms"`
	Floor          int      `json:"floor"`
	HeatingType    string   `json:"heatingType"`
	Address        string   `json:"address"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	PropertyStatus string   `json:"propertyStatus"`
	ImageURLs      []string `json:"imageUrls"`
	OwnerID        string   `json:"ownerId"`
	OwnerName      string   `json:"ownerName"`
}

// NewPropertySummaryResponseList создает публичную выдачу из доменных моделей.
func NewPropertySummaryResponseList(summaries []*entities.PropertySummary) []*PropertySummaryResponse {
	responses := make([]*PropertySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, &PropertySummaryResponse{
			ID:             s.ID,
			PropertyType:   string(s.PropertyType),
			Area:           s.Area,
			NumberOfRooms:  s.NumberOfRooms,
			Floor:          s.Floor,
			HeatingType:    string(s.HeatingType),
			Address:        s.Address,
			Description:    s.Description,
			Price:          s.Price,
			PropertyStatus: string(s.Status),
			ImageURLs:      s.ImageURLs,
			OwnerID:        s.OwnerID,
			OwnerName:      s.OwnerName,
		})
	}
	return responses
}
