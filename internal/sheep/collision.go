package sheep

// CheckCollision reports whether the player's hitbox overlaps the entity's.
func CheckCollision(p *Player, c Collidable) bool {
	return p.Hitbox().Intersects(c.BoundingBox())
}

// FirstCollision returns the first obstacle, then hazard, the player hits.
func FirstCollision(p *Player, obstacles []*Obstacle, hazards []*Hazard) (Collidable, bool) {
	for _, o := range obstacles {
		if CheckCollision(p, o) {
			return o, true
		}
	}
	for _, h := range hazards {
		if CheckCollision(p, h) {
			return h, true
		}
	}
	return nil, false
}
