package product

// Product is one inventory record as persisted in the per-user list.
// Price is in minor currency units (cents) as a digit string.
type Product struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Price          string `json:"price"`
	Quantity       string `json:"quantity"`
	ExpirationDate string `json:"expirationDate"`
	Description    string `json:"description"`
}

// Draft - данные продукта от пользователя, ещё не прошедшие валидацию
type Draft struct {
	Name           string
	Price          string
	Quantity       string
	ExpirationDate string
	Description    string
}

func (d Draft) toProduct(id int64) Product {
	return Product{
		ID:             id,
		Name:           d.Name,
		Price:          d.Price,
		Quantity:       d.Quantity,
		ExpirationDate: d.ExpirationDate,
		Description:    d.Description,
	}
}

// DraftOf returns the editable fields of p.
func DraftOf(p Product) Draft {
	return Draft{
		Name:           p.Name,
		Price:          p.Price,
		Quantity:       p.Quantity,
		ExpirationDate: p.ExpirationDate,
		Description:    p.Description,
	}
}

// List is the ordered product list of one user, in insertion order.
type List []Product

func (l List) indexOf(id int64) int {
	for i, p := range l {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (l List) maxID() int64 {
	var top int64
	for _, p := range l {
		if p.ID > top {
			top = p.ID
		}
	}
	return top
}
