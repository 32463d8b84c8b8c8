package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Ошибки домена объявлений.
var (
	ErrPropertyNotFound     = errors.New("property not found")
	ErrListerNotFound       = errors.New("lister not found")
	ErrUnknownPropertyType  = errors.New("unknown property type")
	ErrUnknownHeatingType   = errors.New("unknown heating type")
	ErrUnknownStatus        = errors.New("unknown property status")
	ErrUnknownNumberOfRooms = errors.New("unknown number of rooms")
	ErrFieldNotPositive     = errors.New("the field must be a positive value")
)

// PropertyType определяет тип объекта недвижимости.
type PropertyType string

// Поддерживаемые типы объектов.
const (
	PropertyApartment PropertyType = "APARTMENT"
	PropertyHouse     PropertyType = "HOUSE"
	PropertyVilla     PropertyType = "VILLA"
	PropertyOffice    PropertyType = "OFFICE"
	PropertyLand      PropertyType = "LAND"
)

// ParsePropertyType разбирает тип объекта без учета регистра.
func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(strings.ToUpper(s)) {
	case PropertyApartment, PropertyHouse, PropertyVilla, PropertyOffice, PropertyLand:
		return PropertyType(strings.ToUpper(s)), nil
	default:
		return "", ErrUnknownPropertyType
	}
}

// HeatingType определяет тип отопления.
type HeatingType string

// Поддерживаемые типы отопления.
const (
	HeatingNaturalGas HeatingType = "NATURAL_GAS"
	HeatingCentral    HeatingType = "CENTRAL"
	HeatingElectric   HeatingType = "ELECTRIC"
	HeatingStove      HeatingType = "STOVE"
	HeatingNone       HeatingType = "NONE"
)

// ParseHeatingType разбирает тип отопления без учета регистра.
func ParseHeatingType(s string) (HeatingType, error) {
	switch HeatingType(strings.ToUpper(s)) {
	case HeatingNaturalGas, HeatingCentral, HeatingElectric, HeatingStove, HeatingNone:
		return HeatingType(strings.ToUpper(s)), nil
	default:
		return "", ErrUnknownHeatingType
	}
}

// PropertyStatus определяет статус объявления.
type PropertyStatus string

// Поддерживаемые статусы объявлений.
const (
	StatusForSale PropertyStatus = "FOR_SALE"
	StatusForRent PropertyStatus = "FOR_RENT"
	StatusSold    PropertyStatus = "SOLD"
	StatusRented  PropertyStatus = "RENTED"
)

// ParsePropertyStatus разбирает статус объявления без учета регистра.
func ParsePropertyStatus(s string) (PropertyStatus, error) {
	switch PropertyStatus(strings.ToUpper(s)) {
	case StatusForSale, StatusForRent, StatusSold, StatusRented:
		return PropertyStatus(strings.ToUpper(s)), nil
	default:
		return "", ErrUnknownStatus
	}
}

// numberOfRoomsSet - допустимые планировки квартир.
var numberOfRoomsSet = map[string]struct{}{
	"1+1": {}, "2+1": {}, "3+1": {}, "4+1": {}, "5+1": {},
	"6+1": {}, "7+1": {}, "8+1": {}, "9+1": {}, "10+1": {},
}

// ParseNumberOfRooms проверяет планировку вида "2+1".
func ParseNumberOfRooms(s string) (string, error) {
	if _, ok := numberOfRoomsSet[s]; !ok {
		return "", ErrUnknownNumberOfRooms
	}
	return s, nil
}

// Property представляет объявление о продаже или аренде недвижимости.
// ImageURLs хранятся в порядке загрузки; OwnerID обязателен и указывает
// на профиль клиента-владельца, ListerID - на учетную запись разместившего.
type Property struct {
	ID            string
	PropertyType  PropertyType
	Area          float64
	NumberOfRooms string
	Floor         int
	HeatingType   HeatingType
	Address       string
	Description   string
	Price         float64
	Status        PropertyStatus
	ImageURLs     []string
	OwnerID       string
	ListerID      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate проверяет форму полей объявления.
func (p *Property) Validate() error {
	if _, err := ParsePropertyType(string(p.PropertyType)); err != nil {
		return err
	}
	if _, err := ParseHeatingType(string(p.HeatingType)); err != nil {
		return err
	}
	if _, err := ParsePropertyStatus(string(p.Status)); err != nil {
		return err
	}
	if _, err := ParseNumberOfRooms(p.NumberOfRooms); err != nil {
		return err
	}
	if p.Area <= 0 {
		return fmt.Errorf("area: %w", ErrFieldNotPositive)
	}
	if p.Floor <= 0 {
		return fmt.Errorf("floor: %w", ErrFieldNotPositive)
	}
	if p.Price <= 0 {
		return fmt.Errorf("price: %w", ErrFieldNotPositive)
	}
	if err := validateProfileField("address", p.Address); err != nil {
		return err
	}
	return validateProfileField("description", p.Description)
}

// PropertySummary - упрощенное представление объявления для публичных выдач.
type PropertySummary struct {
	ID            string
	PropertyType  PropertyType
	Area          float64
	NumberOfRooms string
	Floor         int
	HeatingType   HeatingType
	Address       string
	Description   string
	Price         float64
	Status        PropertyStatus
	ImageURLs     []string
	OwnerID       string
	OwnerName     string
}

// SearchCriteria - набор независимо-опциональных фильтров поиска объявлений.
// Строковые поля считаются не заданными, если пустые; числовые - если nil.
type SearchCriteria struct {
	PropertyType  string
	Status        string
	HeatingType   string
	Address       string
	NumberOfRooms string
	Floor         *int
	MinPrice      *float64
	MaxPrice      *float64
	MinArea       *float64
	MaxArea       *float64
}
