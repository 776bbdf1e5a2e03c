// Project Structure Overview
/*
product-catalog/
├── cmd/
│   ├── server/
│   │   └── main.go
│   └── catalogctl/
│       └── main.go
├── internal/
│   ├── config/
│   │   ├── config.go
│   │   └── database.go
│   ├── models/
│   │   ├── product.go
│   │   ├── image.go
│   │   ├── audit.go
│   │   └── common.go
│   ├── repository/
│   │   ├── repository.go
│   │   ├── memory.go
│   │   └── gorm.go
│   ├── services/
│   │   ├── catalog_service.go
│   │   ├── image_library_service.go
│   │   ├── audit_service.go
│   │   ├── errors.go
│   │   └── seed.go
│   ├── handlers/
│   │   ├── product.go
│   │   ├── image.go
│   │   ├── audit.go
│   │   └── uploads.go
│   ├── middleware/
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   ├── i18n.go
│   │   └── logging.go
│   ├── database/
│   │   ├── connection.go
│   │   └── dbtest/
│   ├── logging/
│   │   └── logging.go
│   ├── i18n/
│   │   ├── i18n.go
│   │   ├── locales/
│   │   │   ├── en.json
│   │   │   └── ru.json
│   │   └── keys.go
│   ├── utils/
│   │   ├── validator.go
│   │   ├── pagination.go
│   │   └── response.go
│   ├── router/
│   │   └── router.go
│   ├── client/
│   │   ├── client.go
│   │   ├── form.go
│   │   ├── listing.go
│   │   └── catalog.go
│   └── cli/
│       ├── root.go
│       ├── settings.go
│       ├── list.go
│       ├── get.go
│       ├── edit.go
│       └── output.go
└── go.mod
*/

package productcatalog

// This file shows the project structure.
// The server lives in cmd/server and the command line client in cmd/catalogctl.
