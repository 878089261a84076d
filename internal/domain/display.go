package domain

// DisplayDescriptor is the presentation attributes for one enum value. Keeping
// these as total maps over the closed enums lets the exhaustiveness be asserted
// in tests instead of scattering branch-per-value rendering logic.
type DisplayDescriptor struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// OrderStatusDisplay maps every order status to its localized descriptor
var OrderStatusDisplay = map[OrderStatus]DisplayDescriptor{
	OrderStatusPending:   {Label: "Pendente", Color: "yellow"},
	OrderStatusActive:    {Label: "Ativo", Color: "blue"},
	OrderStatusCompleted: {Label: "Concluído", Color: "green"},
	OrderStatusCanceled:  {Label: "Cancelado", Color: "red"},
}

// TransactionStatusDisplay maps every transaction status to its descriptor
var TransactionStatusDisplay = map[TransactionStatus]DisplayDescriptor{
	TransactionPending:   {Label: "Pendente", Color: "yellow"},
	TransactionCompleted: {Label: "Pago", Color: "green"},
	TransactionScheduled: {Label: "Agendado", Color: "blue"},
}

// TaskPriorityDisplay maps every task priority to its descriptor
var TaskPriorityDisplay = map[TaskPriority]DisplayDescriptor{
	PriorityLow:    {Label: "Baixa", Color: "gray"},
	PriorityMedium: {Label: "Média", Color: "yellow"},
	PriorityHigh:   {Label: "Alta", Color: "red"},
}

// TaskStatusDisplay maps every task status to its descriptor
var TaskStatusDisplay = map[TaskStatus]DisplayDescriptor{
	TaskPending:    {Label: "Pendente", Color: "gray"},
	TaskInProgress: {Label: "Em andamento", Color: "blue"},
	TaskCompleted:  {Label: "Concluída", Color: "green"},
}
