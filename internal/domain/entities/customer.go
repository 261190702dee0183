package entities

// Customer is the read model the work order service needs from the customer registry.
type Customer struct {
	ID    string `json:"id" dynamodbav:"id"`
	Name  string `json:"name" dynamodbav:"name"`
	Email string `json:"email" dynamodbav:"email"`
}

// Vehicle is the read model the work order service needs from the vehicle registry.
type Vehicle struct {
	ID    string `json:"id" dynamodbav:"id"`
	Brand string `json:"brand" dynamodbav:"brand"`
	Model string `json:"model" dynamodbav:"model"`
	Plate string `json:"plate" dynamodbav:"plate"`
}
