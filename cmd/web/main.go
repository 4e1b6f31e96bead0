// @title           Contratando Planos API
// @version         1.0
// @description     API do back-office da corretora: propostas de planos de saúde, corretores, produtos e tabelas de preços.
// @contact.name    Contratando Planos
// @contact.email   contato@contratandoplanos.com.br
// @host            localhost:8080
// @BasePath        /api/v1

package main

import "contratando_backend/internal/app"

func main() {
	app.Run()
}
