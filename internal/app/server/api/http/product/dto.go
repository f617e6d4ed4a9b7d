package product

import "estoque/internal/domain/product"

type productListOutput struct {
	Body productListResponse
}

type productListResponse struct {
	Products []productView `json:"products"`
}

type findInput struct {
	ID int64 `path:"id" example:"1718000000000" doc:"ID продукта"`
}

type createInput struct {
	Body productRequest
}

type updateInput struct {
	ID   int64 `path:"id" example:"1718000000000" doc:"ID продукта"`
	Body productRequest
}

type productOutput struct {
	Body productView
}

type productDeleteOutput struct {
	Body productDeleteResponse
}

// productRequest принимает поля так, как их вводят в форму: цена и количество могут
// содержать маску, дата как DD/MM/YYYY или только цифры.
type productRequest struct {
	Name           string `json:"name" required:"false" doc:"Название"`
	Price          string `json:"price" required:"false" example:"R$ 3,50" doc:"Цена"`
	Quantity       string `json:"quantity" required:"false" example:"10" doc:"Количество"`
	ExpirationDate string `json:"expirationDate" required:"false" example:"01/01/2030" doc:"Срок годности DD/MM/YYYY"`
	Description    string `json:"description" required:"false" doc:"Описание"`
}

type productDeleteResponse struct {
	ID      int64  `json:"id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type productView struct {
	product.Product
	Display productDisplay `json:"display"`
}

// productDisplay - значения, отформатированные для языка сервера
type productDisplay struct {
	Price          string `json:"price"`
	ExpirationDate string `json:"expirationDate"`
}
