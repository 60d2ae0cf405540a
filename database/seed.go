package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chamba_backend/internal/logger"
	"chamba_backend/internal/models"
)

type seedCategory struct {
	name   string
	slug   string
	skills []string
}

var seedCategories = []seedCategory{
	{"Electricidad", "electricidad", []string{"Instalación eléctrica", "Cableado", "Iluminación", "Tableros eléctricos", "Reparación de cortocircuitos"}},
	{"Albañilería", "albanileria", []string{"Construcción de muros", "Enchapado", "Estucado", "Fundiciones", "Remodelaciones"}},
	{"Plomería", "plomeria", []string{"Instalación de tuberías", "Reparación de fugas", "Destape de cañerías", "Calentadores", "Mantenimiento de baños"}},
	{"Carpintería", "carpinteria", []string{"Muebles a medida", "Puertas y ventanas", "Closets", "Cocinas integrales", "Reparaciones en madera"}},
	{"Pintura", "pintura", []string{"Pintura interior", "Pintura exterior", "Estucado y pintura", "Pintura decorativa", "Impermeabilización"}},
	{"Preparación de Comidas", "preparacion-de-comidas", []string{"Cocina colombiana", "Repostería", "Cocina internacional", "Catering", "Comida saludable"}},
	{"Limpieza", "limpieza", []string{"Limpieza residencial", "Limpieza de oficinas", "Limpieza profunda", "Lavado de tapicería", "Post-obra"}},
	{"Jardinería", "jardineria", []string{"Mantenimiento de jardines", "Poda de árboles", "Diseño de jardines", "Sistema de riego", "Césped"}},
	{"Transporte y Mudanzas", "transporte-y-mudanzas", []string{"Mudanzas locales", "Transporte de carga", "Embalaje", "Montaje de muebles", "Acarreos"}},
	{"Reparación de Electrodomésticos", "reparacion-de-electrodomesticos", []string{"Lavadoras", "Neveras", "Aires acondicionados", "Estufas", "Hornos"}},
	{"Mecánica Automotriz", "mecanica-automotriz", []string{"Mantenimiento preventivo", "Frenos", "Motor", "Suspensión", "Electricidad automotriz"}},
	{"Asesorías", "asesorias", []string{"Legal", "Contable", "Financiera", "Empresarial", "Consultoría IT"}},
	{"Desarrollo Web", "desarrollo-web", []string{"JavaScript", "TypeScript", "React", "Next.js", "Node.js", "Python", "WordPress"}},
	{"Diseño Gráfico", "diseno-grafico", []string{"Figma", "Photoshop", "Illustrator", "Branding", "Diseño de logos", "UI/UX"}},
	{"Marketing Digital", "marketing-digital", []string{"SEO", "Redes sociales", "Google Ads", "Email marketing", "Creación de contenido"}},
	{"Otro", "otro", nil},
}

// Seed inserts the base category taxonomy and promotes the configured
// admin accounts. Safe to run on every start.
func Seed(db *gorm.DB, adminEmails []string) error {
	if err := seedTaxonomy(db); err != nil {
		return err
	}
	if err := promoteAdmins(db, adminEmails); err != nil {
		return err
	}
	return nil
}

func seedTaxonomy(db *gorm.DB) error {
	for _, seed := range seedCategories {
		var category models.Category
		err := db.Where("slug = ?", seed.slug).First(&category).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			category = models.Category{
				Name:   seed.name,
				Slug:   seed.slug,
				Status: models.CategoryStatusApproved,
			}
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", seed.slug, err)
			}
		case err != nil:
			return fmt.Errorf("look up category %s: %w", seed.slug, err)
		}

		for _, skill := range seed.skills {
			row := models.CategorySkill{CategoryID: category.ID, Name: skill}
			err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("seed skill %s/%s: %w", seed.slug, skill, err)
			}
		}
	}
	logger.Info("category taxonomy seeded", "categories", len(seedCategories))
	return nil
}

func promoteAdmins(db *gorm.DB, emails []string) error {
	for _, email := range emails {
		err := db.Model(&models.User{}).
			Where("LOWER(email) = LOWER(?)", email).
			Update("role", models.UserRoleAdmin).Error
		if err != nil {
			return fmt.Errorf("promote admin %s: %w", email, err)
		}
	}
	if len(emails) > 0 {
		logger.Info("admin emails promoted", "count", len(emails))
	}
	return nil
}
