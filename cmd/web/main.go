// @title           My Jantes API
// @version         1.0
// @description     API de l'atelier My Jantes : comptes clients, devis, factures, réservations et messagerie interne.
// @contact.name    My Jantes
// @contact.email   contact@myjantes.fr
// @host            localhost:5000
// @BasePath        /api

package main

import "github.com/riadov001/My-Jantes-Mobile-Vlast/internal/app"

func main() {
	app.Run()
}
