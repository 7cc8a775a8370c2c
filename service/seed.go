package service

import (
	"time"

	"github.com/allometrik/clm-platform-sub000/model"
)

// seed loads the hand-authored sample dataset. Contents mirror the
// legal team's demo catalog; ids are short numeric strings so version
// lineages and cross-references stay reproducible across sessions.
func (s *Store) seed() {
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	// Clauses. Clause "1" carries a three-entry lineage: the initial
	// version plus two later revisions.
	s.AddClause(&model.Clause{
		ID:           "1",
		Title:        "Confidencialidad",
		Category:     "Protección",
		Content:      "Las partes se comprometen a mantener en estricta confidencialidad toda la información intercambiada durante la vigencia del presente contrato, incluyendo datos comerciales, técnicos y financieros.",
		LastModified: date("2024-03-15"),
		Versions: []model.ClauseVersion{
			{
				Version:      1,
				Content:      "Las partes se comprometen a mantener confidencialidad sobre la información intercambiada.",
				ModifiedBy:   "María González",
				ModifiedDate: date("2024-01-10"),
				Changes:      "Versión inicial",
			},
			{
				Version:      2,
				Content:      "Las partes se comprometen a mantener en estricta confidencialidad toda la información intercambiada durante la vigencia del presente contrato.",
				ModifiedBy:   "Carlos Ruiz",
				ModifiedDate: date("2024-02-20"),
				Changes:      "Se precisó el alcance temporal de la obligación",
			},
			{
				Version:      3,
				Content:      "Las partes se comprometen a mantener en estricta confidencialidad toda la información intercambiada durante la vigencia del presente contrato, incluyendo datos comerciales, técnicos y financieros.",
				ModifiedBy:   "María González",
				ModifiedDate: date("2024-03-15"),
				Changes:      "Se enumeraron las categorías de información cubiertas",
			},
		},
	})
	s.AddClause(&model.Clause{
		ID:           "2",
		Title:        "Terminación",
		Category:     "Vigencia",
		Content:      "Cualquiera de las partes podrá dar por terminado el presente contrato mediante notificación escrita con treinta (30) días de anticipación.",
		LastModified: date("2024-02-05"),
		Versions: []model.ClauseVersion{
			{
				Version:      1,
				Content:      "Cualquiera de las partes podrá dar por terminado el presente contrato mediante notificación escrita con treinta (30) días de anticipación.",
				ModifiedBy:   "Carlos Ruiz",
				ModifiedDate: date("2024-02-05"),
				Changes:      "Versión inicial",
			},
		},
	})
	s.AddClause(&model.Clause{
		ID:           "3",
		Title:        "Propiedad Intelectual",
		Category:     "Protección",
		Content:      "Todos los derechos de propiedad intelectual sobre los entregables desarrollados bajo este contrato pertenecerán al cliente una vez efectuado el pago total.",
		LastModified: date("2024-01-22"),
		Versions: []model.ClauseVersion{
			{
				Version:      1,
				Content:      "Todos los derechos de propiedad intelectual sobre los entregables desarrollados bajo este contrato pertenecerán al cliente una vez efectuado el pago total.",
				ModifiedBy:   "Ana Martínez",
				ModifiedDate: date("2024-01-22"),
				Changes:      "Versión inicial",
			},
		},
	})
	s.AddClause(&model.Clause{
		ID:           "4",
		Title:        "Limitación de Responsabilidad",
		Category:     "Responsabilidad",
		Content:      "La responsabilidad total de cada parte bajo este contrato no excederá el monto total pagado durante los doce (12) meses anteriores al evento que dio origen al reclamo.",
		LastModified: date("2024-02-28"),
		Versions: []model.ClauseVersion{
			{
				Version:      1,
				Content:      "La responsabilidad total de cada parte bajo este contrato no excederá el monto total pagado durante los doce (12) meses anteriores al evento que dio origen al reclamo.",
				ModifiedBy:   "María González",
				ModifiedDate: date("2024-02-28"),
				Changes:      "Versión inicial",
			},
		},
	})
	s.AddClause(&model.Clause{
		ID:           "5",
		Title:        "Protección de Datos",
		Category:     "Protección",
		Content:      "Las partes tratarán los datos personales conforme a la normativa aplicable de protección de datos, implementando medidas técnicas y organizativas apropiadas.",
		LastModified: date("2024-03-02"),
		Versions: []model.ClauseVersion{
			{
				Version:      1,
				Content:      "Las partes tratarán los datos personales conforme a la normativa aplicable de protección de datos, implementando medidas técnicas y organizativas apropiadas.",
				ModifiedBy:   "Ana Martínez",
				ModifiedDate: date("2024-03-02"),
				Changes:      "Versión inicial",
			},
		},
	})

	// Templates. Clause "1" is referenced by templates "1" and "2".
	// Template "3" includes a dangling id ("99") on purpose: the demo
	// exercises tolerant resolution.
	s.AddTemplate(&model.Template{
		ID:           "1",
		Name:         "Contrato de Servicios Profesionales",
		Description:  "Plantilla estándar para la contratación de servicios profesionales.",
		ClauseIDs:    []string{"1", "2", "3", "4"},
		Category:     "Servicios",
		IsPublic:     true,
		UsageCount:   12,
		LastModified: date("2024-03-10"),
	})
	s.AddTemplate(&model.Template{
		ID:           "2",
		Name:         "Acuerdo de Confidencialidad (NDA)",
		Description:  "Acuerdo bilateral de confidencialidad para negociaciones preliminares.",
		ClauseIDs:    []string{"1", "5"},
		Category:     "Confidencialidad",
		IsPublic:     true,
		UsageCount:   27,
		LastModified: date("2024-02-18"),
	})
	s.AddTemplate(&model.Template{
		ID:           "3",
		Name:         "Contrato de Arrendamiento Comercial",
		Description:  "Plantilla para arrendamiento de locales comerciales.",
		ClauseIDs:    []string{"2", "4", "99"},
		Category:     "Inmobiliario",
		IsPublic:     false,
		UsageCount:   4,
		LastModified: date("2024-01-30"),
	})

	// Contracts
	s.AddContract(&model.Contract{
		ID:             "1",
		Title:          "Servicios de Consultoría TI - Acme Corp",
		Client:         "Acme Corp",
		Status:         model.StatusActive,
		TemplateID:     "1",
		RequestID:      "REQ-2024-001",
		Value:          85000,
		Currency:       "EUR",
		CurrentVersion: 2,
		CreatedDate:    date("2024-01-15"),
		LastModified:   date("2024-03-01"),
		ExpirationDate: date("2025-01-15"),
	})
	s.AddContract(&model.Contract{
		ID:             "2",
		Title:          "NDA - Negociación Globex",
		Client:         "Globex S.A.",
		Status:         model.StatusPendingApproval,
		TemplateID:     "2",
		CurrentVersion: 1,
		CreatedDate:    date("2024-02-20"),
		LastModified:   date("2024-02-25"),
	})
	s.AddContract(&model.Contract{
		ID:             "3",
		Title:          "Arrendamiento Oficina Central",
		Client:         "Inmobiliaria Centro",
		Status:         model.StatusDraft,
		TemplateID:     "3",
		CurrentVersion: 1,
		CreatedDate:    date("2024-03-05"),
		LastModified:   date("2024-03-05"),
	})

	// Contract versions. AddContractVersion keeps a single active
	// version per contract, so insertion order matters here.
	s.AddContractVersion(&model.ContractVersion{
		ID:            "cv-1",
		ContractID:    "1",
		VersionNumber: 1,
		Content:       "Contrato de servicios de consultoría TI entre Acme Corp y el proveedor.",
		CreatedBy:     "María González",
		CreatedDate:   date("2024-01-15"),
		Changes:       "Borrador inicial desde plantilla",
	})
	s.AddContractVersion(&model.ContractVersion{
		ID:            "cv-2",
		ContractID:    "1",
		VersionNumber: 2,
		Content:       "Contrato de servicios de consultoría TI entre Acme Corp y el proveedor, con alcance ampliado de soporte.",
		CreatedBy:     "Carlos Ruiz",
		CreatedDate:   date("2024-03-01"),
		Changes:       "Ampliación del alcance de soporte",
	})
	s.AddContractVersion(&model.ContractVersion{
		ID:            "cv-3",
		ContractID:    "2",
		VersionNumber: 1,
		Content:       "Acuerdo de confidencialidad bilateral entre Globex S.A. y la compañía.",
		CreatedBy:     "Ana Martínez",
		CreatedDate:   date("2024-02-20"),
		Changes:       "Borrador inicial desde plantilla",
	})

	// Redlines
	s.AddRedline(&model.Redline{
		ID:           "rl-1",
		VersionID:    "cv-2",
		ClauseID:     "4",
		OriginalText: "no excederá el monto total pagado durante los doce (12) meses anteriores",
		ProposedText: "no excederá el cincuenta por ciento (50%) del monto total pagado durante los doce (12) meses anteriores",
		Comment:      "El cliente solicita reducir el tope de responsabilidad",
		SuggestedBy:  "Legal Acme Corp",
		Status:       model.RedlinePending,
	})
	s.AddRedline(&model.Redline{
		ID:           "rl-2",
		VersionID:    "cv-2",
		ClauseID:     "2",
		OriginalText: "treinta (30) días de anticipación",
		ProposedText: "sesenta (60) días de anticipación",
		Comment:      "Alinear con el ciclo de facturación",
		SuggestedBy:  "Carlos Ruiz",
		Status:       model.RedlineAccepted,
	})

	// Approval flows
	s.AddFlow(&model.ApprovalFlow{
		ID:          "af-1",
		ContractID:  "2",
		CurrentStep: 1,
		Status:      model.FlowInProgress,
		StartedDate: date("2024-02-25"),
		Steps: []model.ApprovalStep{
			{ID: "af-1-s1", Name: "Revisión Legal", Approver: "María González", Role: "Legal", Status: model.StepApproved, Required: true, DecidedDate: date("2024-02-26")},
			{ID: "af-1-s2", Name: "Aprobación Financiera", Approver: "Luis Pérez", Role: "Finanzas", Status: model.StepPending, Required: true},
			{ID: "af-1-s3", Name: "Visto Bueno Comercial", Approver: "Elena Torres", Role: "Comercial", Status: model.StepPending, Required: false},
		},
	})
	s.AddFlow(&model.ApprovalFlow{
		ID:          "af-2",
		ContractID:  "1",
		CurrentStep: 2,
		Status:      model.FlowCompleted,
		StartedDate: date("2024-01-16"),
		Steps: []model.ApprovalStep{
			{ID: "af-2-s1", Name: "Revisión Legal", Approver: "María González", Role: "Legal", Status: model.StepApproved, Required: true, DecidedDate: date("2024-01-17")},
			{ID: "af-2-s2", Name: "Aprobación Financiera", Approver: "Luis Pérez", Role: "Finanzas", Status: model.StepApproved, Required: true, DecidedDate: date("2024-01-18")},
			{ID: "af-2-s3", Name: "Firma Dirección", Approver: "Javier Soto", Role: "Dirección", Status: model.StepApproved, Required: true, DecidedDate: date("2024-01-19")},
		},
	})

	// Risk assessments
	s.AddRiskAssessment(&model.RiskAssessment{
		ContractID:  "1",
		OverallRisk: model.RiskMedium,
		RiskScore:   54,
		Factors: []model.RiskFactor{
			{Name: "Tope de responsabilidad", Level: model.RiskMedium, Description: "El cliente propone reducir el tope al 50% del valor anual."},
			{Name: "Plazo de terminación", Level: model.RiskLow, Description: "Plazo de preaviso estándar de 30 días."},
		},
		Recommendations: []string{
			"Negociar un tope de responsabilidad no inferior al 100% del valor anual.",
			"Revisar la cláusula de terminación frente al ciclo de facturación.",
		},
	})
	s.AddRiskAssessment(&model.RiskAssessment{
		ContractID:  "2",
		OverallRisk: model.RiskLow,
		RiskScore:   22,
		Factors: []model.RiskFactor{
			{Name: "Alcance de confidencialidad", Level: model.RiskLow, Description: "Obligaciones bilaterales simétricas."},
		},
		Recommendations: []string{
			"Confirmar el plazo de supervivencia de las obligaciones de confidencialidad.",
		},
	})

	// Intake requests
	s.AddRequest(&model.ContractRequest{
		ID:          "r-1",
		RequestID:   "REQ-2024-001",
		Title:       "Contrato de consultoría TI",
		Requester:   "Elena Torres",
		Department:  "Comercial",
		Type:        "Servicios",
		Priority:    model.PriorityHigh,
		Status:      model.RequestCompleted,
		Description: "Contratación de consultoría para la migración a la nube.",
		CreatedDate: date("2024-01-10"),
	})
	s.AddRequest(&model.ContractRequest{
		ID:          "r-2",
		RequestID:   "REQ-2024-002",
		Title:       "NDA para negociación con Globex",
		Requester:   "Javier Soto",
		Department:  "Dirección",
		Type:        "Confidencialidad",
		Priority:    model.PriorityMedium,
		Status:      model.RequestInProgress,
		Description: "Acuerdo de confidencialidad previo a la due diligence.",
		CreatedDate: date("2024-02-15"),
	})
	s.AddRequest(&model.ContractRequest{
		ID:          "r-3",
		RequestID:   "REQ-2024-003",
		Title:       "Renovación arrendamiento oficina",
		Requester:   "Luis Pérez",
		Department:  "Finanzas",
		Type:        "Inmobiliario",
		Priority:    model.PriorityLow,
		Status:      model.RequestPending,
		CreatedDate: date("2024-03-04"),
	})

	// Playbooks
	s.AddPlaybook(&model.Playbook{
		ID:       "pb-1",
		Name:     "Playbook de Servicios",
		Category: "Servicios",
		Rules: []model.PlaybookRule{
			{
				ClauseCategory: "Responsabilidad",
				Preferred:      "Tope igual al 100% del valor anual del contrato.",
				Fallback:       "Tope no inferior al 75% del valor anual.",
				WalkAway:       "Tope inferior al 50% del valor anual.",
			},
			{
				ClauseCategory: "Vigencia",
				Preferred:      "Preaviso de terminación de 30 días.",
				Fallback:       "Preaviso de 60 días.",
			},
		},
	})
}
