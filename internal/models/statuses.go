package models

// Proposal lifecycle statuses. The column is a free string so legacy rows
// with other values keep working; these are the values the system writes.
const (
	StatusParcial    = "parcial"    // broker submitted, awaiting client documents
	StatusAprovada   = "aprovada"   // client finished the completion form
	StatusCadastrado = "cadastrado" // back office filled the administrative fields
	StatusCancelada  = "cancelada"
)
