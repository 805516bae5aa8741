// @title           Sponsorly API
// @version         1.0
// @description     Маркетплейс создателей контента и спонсоров: профили, подборки, сообщения.
// @contact.name    Sponsorly
// @contact.email   support@sponsorly.in
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import (
	_ "sponsorly_backend/docs"
	"sponsorly_backend/internal/app"
)

func main() {
	app.Run()
}
