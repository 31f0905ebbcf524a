package storage

import "regexp"

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate returns per-field error messages; an empty map means the client is
// well-formed. Submissions with any field error are rejected whole, there is
// no partial save.
func (c *Client) Validate() map[string]string {
	fields := make(map[string]string)

	if c.FirstName == "" {
		fields["firstName"] = "Le prénom est requis"
	}
	if c.LastName == "" {
		fields["lastName"] = "Le nom est requis"
	}
	if c.Email == "" {
		fields["email"] = "L'email est requis"
	} else if !emailRe.MatchString(c.Email) {
		fields["email"] = "Email invalide"
	}

	return fields
}

func (p *Pattern) Validate() map[string]string {
	fields := make(map[string]string)

	if p.Name == "" {
		fields["name"] = "Le nom du patron est requis"
	}
	if err := p.Measurements.validate(); err != "" {
		fields["measurements"] = err
	}

	return fields
}

// Validate enforces the order invariants at construction: exactly one owner
// (registered client or guest), non-negative money, a known status.
func (o *Order) Validate() map[string]string {
	fields := make(map[string]string)

	hasClient := o.ClientID != nil && *o.ClientID != ""
	hasGuest := o.GuestClientName != nil && *o.GuestClientName != ""
	switch {
	case hasClient && hasGuest:
		fields["clientId"] = "Une commande appartient soit à un client enregistré, soit à un invité, pas les deux"
	case !hasClient && !hasGuest:
		fields["clientId"] = "Un client ou un nom d'invité est requis"
	}

	if o.Title == "" {
		fields["title"] = "Le titre est requis"
	}
	if o.TotalPrice < 0 {
		fields["totalPrice"] = "Le prix total ne peut pas être négatif"
	}
	for _, p := range o.Payments {
		if p.Amount < 0 {
			fields["payments"] = "Le montant d'un paiement ne peut pas être négatif"
			break
		}
	}
	if o.DeliveryDate.IsZero() {
		fields["deliveryDate"] = "La date de livraison est requise"
	}
	if !IsKnownStatus(o.Status) {
		fields["status"] = "Statut inconnu"
	}
	if err := o.Measurements.validate(); err != "" {
		fields["measurements"] = err
	}

	return fields
}

func (m *Measurements) validate() string {
	if m.Unit != UnitCm && m.Unit != UnitIn {
		return "L'unité doit être cm ou in"
	}
	for _, c := range m.Custom {
		if c.Name == "" || c.Value == "" {
			return "Chaque mensuration personnalisée doit avoir un nom et une valeur"
		}
	}
	return ""
}
