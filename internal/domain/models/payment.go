package models

import "time"

const PaymentStatusSuccessful = "Successful"

type Payment struct {
	ID            int64     `json:"paymentId"`
	RentalID      int64     `json:"rentalId"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	PaymentStatus string    `json:"paymentStatus"`
}

type Invoice struct {
	InvoiceNumber  string    `json:"invoiceNumber"`
	PaymentID      int64     `json:"paymentId"`
	InvoiceDate    time.Time `json:"invoiceDate"`
	TotalAmount    float64   `json:"totalAmount"`
	DueDate        time.Time `json:"dueDate"`
	TaxAmount      float64   `json:"taxAmount"`
	DiscountAmount float64   `json:"discountAmount"`
}

// PaymentReceipt is everything the payment workflow produced for one rental.
type PaymentReceipt struct {
	Rental  Rental  `json:"rental"`
	Payment Payment `json:"payment"`
	Invoice Invoice `json:"invoice"`
}
