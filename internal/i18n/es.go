package i18n

// MessagesES is the Spanish catalog. Validation texts follow the Laravel
// conventions the billing API uses, so the back office and the API read the
// same way to users.
var MessagesES = map[string]string{
	"validation.required":       "El campo :attribute es obligatorio.",
	"validation.string":         "El campo :attribute debe ser una cadena de caracteres.",
	"validation.numeric":        "El campo :attribute debe ser un número.",
	"validation.integer":        "El campo :attribute debe ser un número entero.",
	"validation.boolean":        "El campo :attribute debe ser verdadero o falso.",
	"validation.date":           "El campo :attribute no es una fecha válida.",
	"validation.email":          "El campo :attribute no es un correo válido.",
	"validation.regex":          "El formato del campo :attribute es inválido.",
	"validation.distinct":       "El campo :attribute tiene un valor duplicado.",
	"validation.confirmed":      "La confirmación de :attribute no coincide.",
	"validation.after_or_equal": "El campo :attribute debe ser una fecha posterior o igual a :date.",
	"validation.min.numeric":    "El campo :attribute debe ser al menos :min.",
	"validation.max.numeric":    "El campo :attribute no debe ser mayor que :max.",
	"validation.max.string":     "El campo :attribute no debe ser mayor que :max caracteres.",
	"validation.gt.numeric":     "El campo :attribute debe ser mayor que :value.",

	"entity.attributes.name":                   "nombre",
	"entity.attributes.crn":                    "CIF",
	"entity.attributes.alias":                  "alias",
	"entity.attributes.address":                "dirección",
	"entity.attributes.population":             "población",
	"entity.attributes.province":               "provincia",
	"entity.attributes.postal_code":            "código postal",
	"entity.attributes.phone":                  "teléfono",
	"entity.attributes.emails":                 "correos",
	"entity.attributes.emails_sending_invoice": "correos de envío de factura",
	"entity.attributes.website":                "sitio web",
	"entity.attributes.payment_method":         "método de pago",
	"entity.attributes.payment_due_days":       "días de vencimiento",
	"entity.attributes.bank_account_number":    "cuenta bancaria",
	"entity.attributes.notes":                  "notas",
	"entity.attributes.active":                 "activo",

	"entity_subscription.attributes.entity":               "entidad",
	"entity_subscription.attributes.subscription":         "suscripción",
	"entity_subscription.attributes.starts_at":            "fecha de inicio",
	"entity_subscription.attributes.ends_at":              "fecha de fin",
	"entity_subscription.attributes.discount_percentage":  "porcentaje de descuento",
	"entity_subscription.attributes.surcharge_percentage": "porcentaje de recargo",
	"entity_subscription.attributes.tax_type_id":          "tipo de impuesto",
	"entity_subscription.attributes.apply_associated_discount": "descuento asociado",

	"subscription.attributes.name":          "nombre",
	"subscription.attributes.service_type":  "tipo de servicio",
	"subscription.attributes.billing_cycle": "ciclo de facturación",
	"subscription.attributes.price":         "precio",
	"subscription.attributes.active":        "activa",

	"invoice.attributes.entity_id":          "entidad",
	"invoice.attributes.entity_name":        "nombre de la entidad",
	"invoice.attributes.entity_crn":         "CIF de la entidad",
	"invoice.attributes.entity_address":     "dirección de la entidad",
	"invoice.attributes.entity_population":  "población de la entidad",
	"invoice.attributes.entity_province":    "provincia de la entidad",
	"invoice.attributes.entity_postal_code": "código postal de la entidad",
	"invoice.attributes.notes":              "notas",
	"invoice.attributes.date":               "fecha",
	"invoice.attributes.number":             "número",
	"invoice.attributes.sended_at":          "fecha de envío",
	"invoice.attributes.paid_at":            "fecha de pago",

	"invoice_item.attributes.service_type_id":      "tipo de servicio",
	"invoice_item.attributes.description":          "descripción",
	"invoice_item.attributes.price":                "precio",
	"invoice_item.attributes.discount_percentage":  "porcentaje de descuento",
	"invoice_item.attributes.surcharge_percentage": "porcentaje de recargo",
	"invoice_item.attributes.tax_type_id":          "tipo de impuesto",
	"invoice_item.attributes.total":                "total",

	"invoiceserie.attributes.name":            "nombre",
	"invoiceserie.attributes.year":            "año",
	"invoiceserie.attributes.issuer_id":       "emisor",
	"invoiceserie.attributes.invoice_type_id": "tipo de factura",
	"invoiceserie.attributes.serie":           "serie",

	"user.attributes.name":                  "nombre",
	"user.attributes.email":                 "correo",
	"user.attributes.password":              "contraseña",
	"user.attributes.password_confirmation": "confirmación de contraseña",
	"user.attributes.active":                "activo",

	"role.attributes.name": "nombre",

	"configuration.attributes.name":  "nombre",
	"configuration.attributes.value": "valor",
}
